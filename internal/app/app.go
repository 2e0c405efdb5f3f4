package app

import (
	"io"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/aerotools/catalogd/config"
	"github.com/aerotools/catalogd/internal/audit"
	"github.com/aerotools/catalogd/internal/catalog"
	"github.com/aerotools/catalogd/internal/storage"
	"github.com/aerotools/catalogd/internal/syncer"
	"github.com/aerotools/catalogd/pkg/metrics"
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Application struct {
	appConfig *config.AppConfig
	store     catalog.Store
	engine    *catalog.Engine
	bus       EventBus.Bus
	sched     *cron.Cron
	auditLog  *audit.Logger
	pusher    *syncer.Syncer
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ EngineProvider    = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AuditProvider     = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Engine() *catalog.Engine {
	return a.engine
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Audit() *audit.Logger {
	return a.auditLog
}

// OverrideStore replaces the persistence adapter (used in tests).
func (a *Application) OverrideStore(store catalog.Store) {
	a.store = store
	a.engine = catalog.NewEngine(store, a.bus)
	_ = a.engine.Load()
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Configure output paths
	zapConfig.OutputPaths = []string{"stdout"}
	if cfg.Logger.FileEnable {
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, cfg.Logger.Filename)
	}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	// Initialize metrics with workdir convention
	err = metrics.InitMetrics(cfg.System.Workdir)
	if err != nil {
		zap.S().Warn("Failed to initialize metrics:", err)
	}

	a.bus = EventBus.New()

	// Open the persistence adapter and prime the catalog
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "file"
	}
	a.store, err = storage.Open(cfg.Storage)
	if err != nil {
		zap.S().Panicf("storage open failed: %v", err)
	}
	zap.S().Infof("Storage ready, type: %s", cfg.Storage.Type)

	a.engine = catalog.NewEngine(a.store, a.bus)
	_ = a.engine.Load()
	metrics.SetGauge(metrics.CatalogSize, int64(len(a.engine.List())))

	// Audit trail records every catalog change
	a.auditLog, err = audit.NewLogger(cfg.System.Workdir)
	if err != nil {
		zap.S().Warnf("audit trail disabled: %v", err)
		a.auditLog = nil
	}
	if err := a.bus.Subscribe(catalog.TopicCatalogChanged, a.onCatalogChanged); err != nil {
		zap.S().Errorf("catalog event subscribe failed: %v", err)
	}

	// Replica push keeps a downstream site in step with the catalog
	if cfg.Sync.Enabled {
		a.pusher = syncer.New(a.engine, cfg.Sync)
		if err := a.pusher.Start(a.bus); err != nil {
			zap.S().Warnf("replica sync disabled: %v", err)
			a.pusher = nil
		}
	}

	a.initJob()
}

// onCatalogChanged fans a change event into the audit trail and metric
// counters.
func (a *Application) onCatalogChanged(ev catalog.ChangeEvent) {
	if a.auditLog != nil {
		a.auditLog.Record(ev.Op, ev.ProductID, ev.Count)
	}
	metrics.IncrCounter(metrics.CatalogMutations, 1)
	metrics.SetGauge(metrics.CatalogSize, int64(ev.Count))
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}

	if a.pusher != nil {
		a.pusher.Stop()
	}

	// bolt holds a file lock until closed
	if c, ok := a.store.(io.Closer); ok {
		_ = c.Close()
	}

	_ = metrics.Close()
	_ = zap.L().Sync()
}
