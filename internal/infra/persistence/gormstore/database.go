// Package gormstore implements the domain repositories on GORM. Production runs on
// PostgreSQL, while local development and the test suite run on SQLite through the same code.
package gormstore

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"cakeshop/config"
	"cakeshop/internal/domain/constants"
	"cakeshop/internal/domain/lifecycle"
	"cakeshop/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
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
}

// New opens the configured database and ties its pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := open(params.Config)
	if err != nil {
		return nil, err
	}

	// Constraint violations come back as gorm.ErrDuplicatedKey and friends.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step writes use txManager.Execute explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	driver := params.Config.Database.Driver

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", driver)
			}

			go monitorDBPool(monitorCtx, params.Logger.With(slog.String("driver", driver)), sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case constants.DatabaseDriverPostgres, "":
		if cfg.Postgres == nil {
			return nil, errors.New("postgres configuration is required for the postgres driver")
		}
		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}

		return db, nil
	case constants.DatabaseDriverSQLite:
		return OpenSQLite(cfg.Database.SQLitePath)
	default:
		return nil, errors.Errorf("unsupported database driver %q (supported: postgres, sqlite)", cfg.Database.Driver)
	}
}

// OpenSQLite opens a SQLite database. Row locks are dropped by the dialect,
// and SQLite's database-level write lock serialises writers instead.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database.sqlitePath is required for the sqlite driver")
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	return db, nil
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
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Database pool wait",
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
			)
		}
	}
}
