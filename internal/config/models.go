package config

import (
	"fmt"
	"time"
)

type TopLevel struct {
	Notably struct {
		Server App `json:"server" mapstructure:"server"`
	} `json:"notably" mapstructure:"notably"`
}

type App struct {
	BindAddress     string         `json:"bind_address" mapstructure:"bind_address"`
	ShutdownTimeout time.Duration  `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	Database        Database       `json:"database" mapstructure:"database"`
	Cache           *Cache         `json:"cache,omitempty" mapstructure:"cache"`
	Poem            Poem           `json:"poem" mapstructure:"poem"`
	ApmClient       *ApmClient     `json:"apm,omitempty" mapstructure:"apm"`
	Logging         *Logging       `json:"logging,omitempty" mapstructure:"logging"`
	StoreReporter   *StoreReporter `json:"store_reporter,omitempty" mapstructure:"store_reporter"`
}

type Logging struct {
	Json  *bool   `json:"json,omitempty" mapstructure:"json"`
	File  *string `json:"file,omitempty" mapstructure:"file"`
	Level *string `json:"level,omitempty" mapstructure:"level"`
}

// Database configures the MySQL connection pool
type Database struct {
	// Either a go-sql-driver DSN (user:pass@tcp(host:3306)/db) or a mysql:// URL
	Url              string        `json:"url" mapstructure:"url"`
	MaxOpenConns     int           `json:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns     int           `json:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime  time.Duration `json:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	OperationTimeout time.Duration `json:"operation_timeout" mapstructure:"operation_timeout"`
	ConnectTimeout   time.Duration `json:"connect_timeout" mapstructure:"connect_timeout"`
}

// Cache is accepted for deployment parity; nothing in this service reads through it
type Cache struct {
	Url string `json:"url" mapstructure:"url"`
}

type Poem struct {
	File string `json:"file" mapstructure:"file"`
}

type ApmClient struct {
	Address     *string `json:"address,omitempty" mapstructure:"address"`
	SecretToken *string `json:"secret_token,omitempty" mapstructure:"secret_token"`
}

// StoreReporter periodically logs connection pool stats
type StoreReporter struct {
	ScheduleExpression string `json:"schedule_expression" mapstructure:"schedule_expression"`
}

const (
	DefaultBindAddress      = "0.0.0.0:3000"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultMaxOpenConns     = 10
	DefaultConnMaxLifetime  = 3 * time.Minute
	DefaultOperationTimeout = 5 * time.Second
	DefaultConnectTimeout   = 10 * time.Second
	DefaultPoemFile         = "poem.yaml"
)

// StartupConfigurationError means the process cannot start with the config it was given
type StartupConfigurationError struct {
	Key    string
	Reason string
}

func (e StartupConfigurationError) Error() string {
	return fmt.Sprintf("Invalid configuration for [%s]: %s", e.Key, e.Reason)
}

// WithDefaults returns a copy with zero values replaced by defaults
func (a App) WithDefaults() App {
	if a.BindAddress == "" {
		a.BindAddress = DefaultBindAddress
	}
	if a.ShutdownTimeout == 0 {
		a.ShutdownTimeout = DefaultShutdownTimeout
	}
	if a.Database.MaxOpenConns == 0 {
		a.Database.MaxOpenConns = DefaultMaxOpenConns
	}
	if a.Database.MaxIdleConns == 0 {
		a.Database.MaxIdleConns = a.Database.MaxOpenConns
	}
	if a.Database.ConnMaxLifetime == 0 {
		a.Database.ConnMaxLifetime = DefaultConnMaxLifetime
	}
	if a.Database.OperationTimeout == 0 {
		a.Database.OperationTimeout = DefaultOperationTimeout
	}
	if a.Database.ConnectTimeout == 0 {
		a.Database.ConnectTimeout = DefaultConnectTimeout
	}
	if a.Poem.File == "" {
		a.Poem.File = DefaultPoemFile
	}
	return a
}

// Validate checks the things we refuse to start without
func (a *App) Validate() error {
	if a.Database.Url == "" {
		return StartupConfigurationError{Key: "database.url", Reason: "must be set (or DATABASE_URL)"}
	}
	if a.Database.MaxOpenConns < 0 {
		return StartupConfigurationError{Key: "database.max_open_conns", Reason: "must not be negative"}
	}
	if a.Database.MaxIdleConns > a.Database.MaxOpenConns {
		return StartupConfigurationError{Key: "database.max_idle_conns", Reason: "must not exceed max_open_conns"}
	}
	return nil
}
