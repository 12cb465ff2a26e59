package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"patientapp/config"
	"patientapp/internal/domain/lifecycle"
	"patientapp/internal/errors"
	"patientapp/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
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

// New opens the PostgreSQL pool (with read replicas when configured) and ties it to
// the application lifecycle: pinged and optionally migrated on start, closed on stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(quoteConnValues(params.Config.Postgres))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Explicit transactions go through txManager.Execute; single statements need none.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	autoMigrate := params.Config.Storage.AutoMigrate
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if autoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the users and patients tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserModel{}, &model.PatientModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// quoteConnValues returns a copy of conn whose values are single-quoted keyword/value
// literals. pgLib interpolates them into the DSN as-is, so an empty password or one
// containing a space would otherwise shift or truncate the following settings.
func quoteConnValues(conn *pgLib.DBConn) *pgLib.DBConn {
	quoted := *conn
	quoted.Master = quoteConnection(conn.Master)
	quoted.Database = quoteDSNValue(conn.Database)
	quoted.SSLMode = quoteOptionalDSNValue(conn.SSLMode)
	quoted.SearchPath = quoteOptionalDSNValue(conn.SearchPath)
	quoted.ApplicationName = quoteOptionalDSNValue(conn.ApplicationName)

	if len(conn.Replicas) > 0 {
		quoted.Replicas = make([]pgLib.ConnectionConfig, 0, len(conn.Replicas))
		for _, replica := range conn.Replicas {
			quoted.Replicas = append(quoted.Replicas, quoteConnection(replica))
		}
	}

	if len(conn.RuntimeParams) > 0 {
		quoted.RuntimeParams = make(map[string]string, len(conn.RuntimeParams))
		for key, value := range conn.RuntimeParams {
			quoted.RuntimeParams[key] = quoteDSNValue(value)
		}
	}

	return &quoted
}

func quoteConnection(conn pgLib.ConnectionConfig) pgLib.ConnectionConfig {
	return pgLib.ConnectionConfig{
		Host:     quoteDSNValue(conn.Host),
		Port:     quoteDSNValue(conn.Port),
		UserName: quoteDSNValue(conn.UserName),
		Password: quoteDSNValue(conn.Password),
	}
}

var dsnValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(value string) string {
	return "'" + dsnValueEscaper.Replace(value) + "'"
}

// Empty values keep pgLib's defaults.
func quoteOptionalDSNValue(value string) string {
	if value == "" {
		return ""
	}

	return quoteDSNValue(value)
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
