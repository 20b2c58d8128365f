package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"jobly/config"
	"jobly/internal/domain/lifecycle"
	"jobly/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, params.Config.DBPool)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Schema != nil && params.Config.Schema.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated")
			}

			if monitor.enabled() {
				go monitor.run(monitorCtx, sqlDB)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor logs connection pool waits between two samples of sql.DBStats.
type poolMonitor struct {
	logger        *slog.Logger
	interval      time.Duration
	warnThreshold time.Duration
}

func newPoolMonitor(logger *slog.Logger, cfg *config.DBPoolConfig) *poolMonitor {
	if cfg == nil {
		return &poolMonitor{logger: logger}
	}

	return &poolMonitor{
		logger:        logger,
		interval:      cfg.MonitorInterval,
		warnThreshold: cfg.WaitWarnThreshold,
	}
}

func (m *poolMonitor) enabled() bool {
	return m.logger != nil && m.interval > 0
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe reports requests that had to wait for a connection since the previous sample.
// Waits adding up to warnThreshold or more are warnings, shorter ones debug noise.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waited := cur.WaitCount - prev.WaitCount
	if waited <= 0 {
		return
	}
	waitDuration := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waitDuration >= m.warnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Connection pool wait",
		slog.Int64("waited", waited),
		slog.Duration("wait_duration", waitDuration),
		slog.Duration("avg_wait", waitDuration/time.Duration(waited)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
