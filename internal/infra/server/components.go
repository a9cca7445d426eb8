package server

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.elastic.co/apm/module/apmgin"

	// registers the generated API docs with swag
	_ "github.com/lloydmeta/notably/docs"
	healthController "github.com/lloydmeta/notably/internal/api/controllers/health"
	noteController "github.com/lloydmeta/notably/internal/api/controllers/note"
	numberController "github.com/lloydmeta/notably/internal/api/controllers/number"
	poemController "github.com/lloydmeta/notably/internal/api/controllers/poem"
	"github.com/lloydmeta/notably/internal/config"
	"github.com/lloydmeta/notably/internal/domain/health"
	"github.com/lloydmeta/notably/internal/domain/note"
	"github.com/lloydmeta/notably/internal/domain/poem"
	"github.com/lloydmeta/notably/internal/domain/registry"
	apmTracing "github.com/lloydmeta/notably/internal/infra/apm/tracing"
	"github.com/lloydmeta/notably/internal/infra/cron/store"
	mysqlCommon "github.com/lloydmeta/notably/internal/infra/mysql/common"
	mysqlNote "github.com/lloydmeta/notably/internal/infra/mysql/note"
	"github.com/lloydmeta/notably/internal/infra/server/binding/validation"
	"github.com/lloydmeta/notably/internal/infra/server/middleware"
	"github.com/lloydmeta/notably/internal/infra/server/routing"
	"github.com/lloydmeta/notably/internal/infra/server/routing/greetings"
	healthRouting "github.com/lloydmeta/notably/internal/infra/server/routing/health"
	"github.com/lloydmeta/notably/internal/infra/server/routing/notes"
	"github.com/lloydmeta/notably/internal/infra/server/routing/numbers"
	poemRouting "github.com/lloydmeta/notably/internal/infra/server/routing/poem"
	yamlPoem "github.com/lloydmeta/notably/internal/infra/yaml/poem"
)

const storeDependencyName = "mysql"

// Components holds everything the server needs to run
type Components struct {
	config        *config.App
	db            *sql.DB
	storeReporter store.Reporter
	engine        *gin.Engine
}

// NewComponents connects to the database, makes sure its tables are there and wires
// the HTTP routes.
//
// Fails if the database cannot be reached within the configured connect timeout
func NewComponents(conf *config.App) (*Components, error) {
	db, err := mysqlCommon.NewClient(conf.Database)
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	if err := mysqlCommon.WaitUntilReachable(ctx, db, conf.Database.ConnectTimeout); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := NewSetup(db).RunIfNeeded(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	var storeReporter store.Reporter
	if conf.StoreReporter != nil {
		storeReporter = store.NewReporter(db, conf.StoreReporter.ScheduleExpression, conf.Database.OperationTimeout, apmTracing.NewTracer())
	}

	noteService := mysqlNote.NewService(db, conf.Database.OperationTimeout)
	numbersRegistry := registry.NewRegistry()
	poemReader := yamlPoem.NewReader(conf.Poem.File)

	return &Components{
		config:        conf,
		db:            db,
		storeReporter: storeReporter,
		engine:        newEngine(noteService, numbersRegistry, poemReader),
	}, nil
}

// newEngine wires middleware and every route on top of the given collaborators
func newEngine(noteService note.Service, numbersRegistry registry.Registry, poemReader poem.Reader) *gin.Engine {
	validation.SetUpValidators()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(
		apmgin.Middleware(engine),
		middleware.RequestId(),
		logger.SetLogger(logger.Config{
			Logger:   &log.Logger,
			UTC:      true,
			SkipPath: []string{healthRouting.Path},
		}),
		gzip.Gzip(gzip.DefaultCompression),
		gin.Recovery(),
	)
	engine.NoRoute(routing.NoRoute)
	engine.NoMethod(routing.NoMethod)

	topLevelGroup := routing.NewTopLevelRoutesGroup(engine)
	handlers := []routing.RoutesHandler{
		&greetings.RoutesHandler{},
		&healthRouting.RoutesHandler{
			Controller: healthController.New(health.Dependency{Name: storeDependencyName, Pinger: noteService}),
		},
		&numbers.RoutesHandler{
			Controller: numberController.New(numbersRegistry),
		},
		&notes.RoutesHandler{
			Controller: noteController.New(noteService),
		},
		&poemRouting.RoutesHandler{
			Controller: poemController.New(poemReader),
		},
	}
	for _, h := range handlers {
		h.RegisterRoutes(topLevelGroup)
	}
	topLevelGroup.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return engine
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts everything down
func (c *Components) Run() {
	if c.storeReporter != nil {
		if err := c.storeReporter.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start store reporter")
		}
	}

	srv := &http.Server{
		Addr:    c.config.BindAddress,
		Handler: c.engine,
	}

	go func() {
		log.Info().Str("address", c.config.BindAddress).Msg("Serving")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), c.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server did not shut down cleanly")
	}
	if c.storeReporter != nil {
		c.storeReporter.Stop()
	}
	if err := c.db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}
	log.Info().Msg("Shut down complete")
}
