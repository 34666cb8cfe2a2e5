package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulaziz-cybers/ToDoKirano/internal/config"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		check    slog.Level
		enabled  bool
	}{
		{"debug level", "debug", slog.LevelDebug, true},
		{"info level suppresses debug", "info", slog.LevelDebug, false},
		{"warn level suppresses info", "warn", slog.LevelInfo, false},
		{"error level enables error", "error", slog.LevelError, true},
		{"level is case insensitive", "DEBUG", slog.LevelDebug, true},
		{"invalid level falls back to info", "verbose", slog.LevelInfo, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tc.enabled, log.Enabled(context.Background(), tc.check))
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	scoped := slog.New(slog.NewTextHandler(io.Discard, nil)).
		With(slog.String("trace_id", "abc123"))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("round trips through context", func(t *testing.T) {
		t.Parallel()

		ctx := logger.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, logger.FromContext(ctx))
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
	})

	t.Run("falls back without a context logger", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		assert.NotNil(t, logger.FromContext(ctx))
		assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback))
	})
}
