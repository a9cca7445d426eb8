package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/notably/internal/domain/tracing"
)

// Pool is the part of *sql.DB the reporter looks at
type Pool interface {
	Stats() sql.DBStats
	PingContext(ctx context.Context) error
}

// Reporter periodically pings the note store and logs connection pool stats, so pool
// exhaustion shows up in logs before it shows up as 503s
type Reporter interface {
	// Start schedules the report and starts the cron in its own goroutine
	Start() error

	// Stop stops the cron; an in-flight report is allowed to finish
	Stop()
}

type reporterImpl struct {
	cron *cron.Cron

	pool Pool

	tracer tracing.Tracer

	scheduleExpression string

	pingTimeout time.Duration

	mu sync.Mutex

	entryId *cron.EntryID
}

// NewReporter returns a Reporter that runs on the given cron expression
// (standard 5-field or descriptors like "@every 1m")
func NewReporter(pool Pool, scheduleExpression string, pingTimeout time.Duration, tracer tracing.Tracer) Reporter {
	return &reporterImpl{
		cron:               cron.New(cron.WithLocation(time.UTC), cron.WithLogger(zeroLogCronLogger{})),
		pool:               pool,
		tracer:             tracer,
		scheduleExpression: scheduleExpression,
		pingTimeout:        pingTimeout,
		mu:                 sync.Mutex{},
	}
}

func (r *reporterImpl) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entryId == nil {
		job := cron.NewChain(
			cron.Recover(zeroLogCronLogger{}),
			cron.SkipIfStillRunning(zeroLogCronLogger{}),
		).Then(cron.FuncJob(r.report))
		entryId, err := r.cron.AddJob(r.scheduleExpression, job)
		if err != nil {
			return fmt.Errorf("invalid store reporter schedule [%s]: %w", r.scheduleExpression, err)
		}
		r.entryId = &entryId
	}
	log.Info().Str("expression", r.scheduleExpression).Msg("Starting store reporter")
	r.cron.Start()
	return nil
}

func (r *reporterImpl) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	<-r.cron.Stop().Done()
}

func (r *reporterImpl) report() {
	tx := r.tracer.BackgroundTx("store-report")
	defer tx.End()

	ctx, cancel := context.WithTimeout(tx.Context(), r.pingTimeout)
	defer cancel()
	pingErr := r.pool.PingContext(ctx)

	stats := r.pool.Stats()
	var event = log.Info()
	if pingErr != nil {
		event = log.Error().Err(pingErr)
	} else if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		event = log.Warn()
	}
	event.
		Int("max_open", stats.MaxOpenConnections).
		Int("open", stats.OpenConnections).
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Int64("wait_count", stats.WaitCount).
		Dur("wait_duration", stats.WaitDuration).
		Msg("Note store pool stats")
}

type zeroLogCronLogger struct {
}

func (z zeroLogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	if log.Debug().Enabled() {
		formatted := formatTimeValues(keysAndValues)
		log.Debug().Fields(formatted).Msg(msg)
	}
}

func (z zeroLogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	if log.Error().Enabled() {
		formatted := formatTimeValues(keysAndValues)
		log.Error().Err(err).Fields(formatted).Msg(msg)
	}
}

// formatTimeValues formats any time.Time values as RFC3339 *and*
// returns the even-odd idx key-value pair slice as a map
func formatTimeValues(keysAndValues []interface{}) map[string]interface{} {
	formattedArgs := make(map[string]interface{}, len(keysAndValues)/2)
	for idx := 0; idx < len(keysAndValues); idx += 2 {
		var key string
		if s, ok := keysAndValues[idx].(string); ok {
			key = s
		} else {
			key = fmt.Sprint(keysAndValues[idx])
		}
		valueIdx := idx + 1
		if len(keysAndValues) > valueIdx {
			value := keysAndValues[valueIdx]
			if t, ok := value.(time.Time); ok {
				value = t.Format(time.RFC3339)
			}
			formattedArgs[key] = value
		}
	}
	return formattedArgs
}
