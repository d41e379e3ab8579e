package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"personbench/config"
	"personbench/internal/domain/lifecycle"
	"personbench/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger

	Registerer prometheus.Registerer `optional:"true"`
}

// New creates the process-wide PostgreSQL pool. The pool is pinged on start and drained on stop.
func New(params Params) (*gorm.DB, error) {
	pgCfg := params.Config.PG

	db, err := Open(gormpg.Open(pgCfg.DSN()), params.Config, params.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if err := registerReplicas(db, pgCfg); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registerer != nil {
		if err := params.Registerer.Register(collectors.NewDBStatsCollector(sqlDB, pgCfg.Database)); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool collector")
		}
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()
			params.Logger.Info("Closing PostgreSQL pool", slog.Int("inUseConns", sqlDB.Stats().InUse))

			// Close waits for checked-out connections to be returned before closing them.
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Open configures GORM over the given dialector and applies the pool limits from config.
func Open(dialector gorm.Dialector, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		// Every write is a single statement; auto-commit keeps it atomic without an explicit transaction.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "gorm.Open")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "db.DB")
	}

	if pgCfg := cfg.PG; pgCfg != nil {
		if pgCfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(pgCfg.MaxOpenConns)
		}
		if pgCfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(pgCfg.MaxIdleConns)
		}
		if pgCfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(pgCfg.ConnMaxLifetime)
		}
		if pgCfg.ConnMaxIdleTime > 0 {
			sqlDB.SetConnMaxIdleTime(pgCfg.ConnMaxIdleTime)
		}
	}

	return db, nil
}

// registerReplicas routes plain reads to the configured followers. Writes stay on the primary.
func registerReplicas(db *gorm.DB, pgCfg *config.PostgresConfig) error {
	if len(pgCfg.Replicas) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(pgCfg.Replicas))
	for _, replica := range pgCfg.Replicas {
		replicas = append(replicas, gormpg.Open(pgCfg.ReplicaDSN(replica)))
	}

	return useReplicas(db, replicas, pgCfg)
}

// useReplicas registers dbresolver with the given replica dialectors and the primary's pool limits.
func useReplicas(db *gorm.DB, replicas []gorm.Dialector, pgCfg *config.PostgresConfig) error {
	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})
	if pgCfg.MaxOpenConns > 0 {
		resolver = resolver.SetMaxOpenConns(pgCfg.MaxOpenConns)
	}
	if pgCfg.MaxIdleConns > 0 {
		resolver = resolver.SetMaxIdleConns(pgCfg.MaxIdleConns)
	}
	if pgCfg.ConnMaxLifetime > 0 {
		resolver = resolver.SetConnMaxLifetime(pgCfg.ConnMaxLifetime)
	}

	return errors.Wrap(db.Use(resolver), "failed to register read replicas")
}

// hasReplicas reports whether dbresolver is installed on db.
func hasReplicas(db *gorm.DB) bool {
	_, ok := db.Config.Plugins[(&dbresolver.DBResolver{}).Name()]

	return ok
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
