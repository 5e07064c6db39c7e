package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"lifeflow/config"
	deliverycontext "lifeflow/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func query() (string, int64) {
	return `UPDATE "blood_requests" SET "status"='In Progress'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("failure is logged with the statement", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(ctx, time.Now(), query, errors.New("deadlock detected"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "deadlock detected")
		assert.Contains(t, buf.String(), "blood_requests")
	})

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)

		assert.NotContains(t, buf.String(), "GORM query failed")
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(ctx, time.Now().Add(-time.Second), query, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), query, nil)
		assert.Empty(t, buf.String())

		l, buf = newBufferedGormLogger(true)
		l.Trace(ctx, time.Now(), query, nil)
		assert.Contains(t, buf.String(), `"msg":"GORM query"`)
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.LogMode(logger.Silent).Trace(ctx, time.Now(), query, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, base := newBufferedGormLogger(false)
	var scoped bytes.Buffer
	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&scoped, nil)))

	l.Warn(ctx, "pool %s", "exhausted")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "pool exhausted")
}
