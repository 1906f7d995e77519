package postgres

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"taxgrid/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// captureHandler records every emitted slog record for assertions.
type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)

	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func newCapturedGormLogger(cfg *config.Config) (gormlogger.Interface, *captureHandler) {
	handler := &captureHandler{}

	return newGormSlogLogger(slog.New(handler), cfg), handler
}

func queryFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace_QueryFailure(t *testing.T) {
	gormLog, handler := newCapturedGormLogger(&config.Config{})

	gormLog.Trace(context.Background(), time.Now(), queryFn("SELECT 1"), errors.New("connection refused"))

	require.Len(t, handler.records, 1)
	assert.Equal(t, slog.LevelError, handler.records[0].Level)
	assert.Equal(t, "GORM query failed", handler.records[0].Message)
}

func TestGormSlogLogger_Trace_RecordNotFoundSuppressed(t *testing.T) {
	gormLog, handler := newCapturedGormLogger(&config.Config{})

	gormLog.Trace(context.Background(), time.Now(), queryFn("SELECT 1"), gorm.ErrRecordNotFound)

	assert.Empty(t, handler.records)
}

func TestGormSlogLogger_Trace_SlowQuery(t *testing.T) {
	gormLog, handler := newCapturedGormLogger(&config.Config{})

	begin := time.Now().Add(-time.Second)
	gormLog.Trace(context.Background(), begin, queryFn("SELECT pg_sleep(1)"), nil)

	require.Len(t, handler.records, 1)
	assert.Equal(t, slog.LevelWarn, handler.records[0].Level)
	assert.Equal(t, "GORM slow query", handler.records[0].Message)
}

func TestGormSlogLogger_Trace_FastQuerySkippedBelowInfo(t *testing.T) {
	gormLog, handler := newCapturedGormLogger(&config.Config{})

	gormLog.Trace(context.Background(), time.Now(), queryFn("SELECT 1"), nil)

	assert.Empty(t, handler.records)
}

func TestGormSlogLogger_DebugConfigLogsQueries(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	gormLog, handler := newCapturedGormLogger(cfg)

	gormLog.Trace(context.Background(), time.Now(), queryFn("SELECT 1"), nil)

	require.Len(t, handler.records, 1)
	assert.Equal(t, slog.LevelInfo, handler.records[0].Level)
	assert.Equal(t, "GORM query", handler.records[0].Message)
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	gormLog, handler := newCapturedGormLogger(&config.Config{})

	// Default level gates informational messages.
	gormLog.Info(context.Background(), "migration step %d", 1)
	assert.Empty(t, handler.records)

	verbose := gormLog.LogMode(gormlogger.Info)
	verbose.Info(context.Background(), "migration step %d", 2)
	require.Len(t, handler.records, 1)
	assert.Equal(t, "GORM info", handler.records[0].Message)

	// The original logger keeps its own level.
	gormLog.Info(context.Background(), "migration step %d", 3)
	assert.Len(t, handler.records, 1)
}

func TestGormSlogLogger_Silent(t *testing.T) {
	gormLog, handler := newCapturedGormLogger(&config.Config{})

	silent := gormLog.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now().Add(-time.Second), queryFn("SELECT 1"), errors.New("boom"))
	silent.Error(context.Background(), "failure %s", "boom")

	assert.Empty(t, handler.records)
}
