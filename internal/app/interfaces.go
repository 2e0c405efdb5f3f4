package app

import (
	"github.com/aerotools/catalogd/config"
	"github.com/aerotools/catalogd/internal/audit"
	"github.com/aerotools/catalogd/internal/catalog"
	"github.com/robfig/cron/v3"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// EngineProvider provides the catalog engine
type EngineProvider interface {
	Engine() *catalog.Engine
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AuditProvider provides the catalog audit trail
type AuditProvider interface {
	Audit() *audit.Logger
}

// AppContext combines all provider interfaces for full application context
// Services should depend on specific providers or this combined interface
type AppContext interface {
	ConfigProvider
	EngineProvider
	SchedulerProvider
	AuditProvider

	// RunBackupNow writes a catalog snapshot immediately
	RunBackupNow() error
}
