package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"patientapp/config"
	"patientapp/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "users" WHERE username = $1`, 1
}

func TestGormSlogLogger_Level(t *testing.T) {
	cfg := &config.Config{}
	l := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Warn, l.level)

	cfg.Env.Debug = true
	l = newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, l.level)

	silent := l.LogMode(logger.Silent).(*gormSlogLogger)
	assert.Equal(t, logger.Silent, silent.level)
	assert.Equal(t, logger.Info, l.level, "LogMode must not mutate the receiver")

	noLogger := newGormSlogLogger(nil, cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Silent, noLogger.level)
	noLogger.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), &config.Config{}).(*gormSlogLogger)

	sql, params := l.ParamsFilter(context.Background(), `INSERT INTO "users" VALUES ($1,$2)`, "alice", "$2a$12$hash")

	assert.Equal(t, `INSERT INTO "users" VALUES ($1,$2)`, sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn, errors.New("syntax error"))
		assert.Contains(t, buf.String(), "sql query failed")
		assert.Contains(t, buf.String(), "syntax error")
	})

	t.Run("slow queries are warned", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "slow sql query")
	})

	t.Run("fast queries only at info", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l.LogMode(logger.Info).Trace(ctx, time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "sql query")
	})

	t.Run("gorm messages", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Info(ctx, "hidden %d", 1)
		l.Warn(ctx, "replica %s unreachable", "r0")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "replica r0 unreachable")
	})
}
