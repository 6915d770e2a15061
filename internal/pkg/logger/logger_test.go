package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger restores the package state between tests.
func resetLogger() {
	logger.Store(zap.NewNop().Sugar())
	initOnce = sync.Once{}
}

func initBuffer(t *testing.T, opts ...Option) *bytes.Buffer {
	t.Helper()
	resetLogger()
	t.Cleanup(resetLogger)

	var buf bytes.Buffer
	opts = append(opts, WithSink(zapcore.AddSync(&buf)))
	require.NoError(t, Init(opts...))
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestInit(t *testing.T) {
	t.Run("rejects an invalid level", func(t *testing.T) {
		resetLogger()
		defer resetLogger()

		err := Init(WithLevel("loud"))
		assert.Error(t, err)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		resetLogger()
		defer resetLogger()

		err := Init(WithFormat("xml"))
		assert.ErrorContains(t, err, "unknown log format")
	})

	t.Run("only the first call takes effect", func(t *testing.T) {
		buf := initBuffer(t, WithLevel("error"))

		require.NoError(t, Init(WithLevel("debug")))
		Info(context.Background(), "dropped")

		assert.Empty(t, buf.String())
	})
}

func TestLevels(t *testing.T) {
	buf := initBuffer(t, WithLevel("warn"))
	ctx := context.Background()

	Debug(ctx, "debug message")
	Info(ctx, "info message")
	assert.Empty(t, buf.String())

	Warn(ctx, "warn message", "block.number", 101)
	entry := decodeLine(t, buf)

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "warn message", entry["msg"])
	assert.EqualValues(t, 101, entry["block.number"])
}

func TestConsoleFormat(t *testing.T) {
	buf := initBuffer(t, WithFormat(FormatConsole))

	Info(context.Background(), "fetched peers", "peers.fetched", 3)

	assert.Contains(t, buf.String(), "fetched peers")
	assert.Contains(t, buf.String(), `"peers.fetched": 3`)
}

func TestTraceCorrelation(t *testing.T) {
	t.Run("adds trace fields for a valid span context", func(t *testing.T) {
		buf := initBuffer(t)

		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    trace.TraceID{0x01, 0x02},
			SpanID:     trace.SpanID{0x03},
			TraceFlags: trace.FlagsSampled,
		})
		ctx := trace.ContextWithSpanContext(context.Background(), sc)

		Error(ctx, "failed to scan block")
		entry := decodeLine(t, buf)

		assert.Equal(t, sc.TraceID().String(), entry["trace_id"])
		assert.Equal(t, sc.SpanID().String(), entry["span_id"])
	})

	t.Run("omits trace fields without a span", func(t *testing.T) {
		buf := initBuffer(t)

		Error(context.Background(), "failed to fetch peers")
		entry := decodeLine(t, buf)

		assert.NotContains(t, entry, "trace_id")
	})
}

func TestUninitializedLoggerIsSafe(t *testing.T) {
	resetLogger()

	assert.NotPanics(t, func() {
		Info(context.Background(), "nobody listens")
		_ = Sync()
	})
}

func TestLeveledCore(t *testing.T) {
	var buf bytes.Buffer
	inner := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(&buf), zapcore.DebugLevel)
	core := leveledCore{Core: inner, level: zapcore.WarnLevel}

	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))

	l := zap.New(core.With([]zapcore.Field{zap.String("scan.id", "abc")}))
	l.Info("dropped")
	l.Warn("kept")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "abc", entry["scan.id"])
}

func TestInit_WithOTelBridge(t *testing.T) {
	buf := initBuffer(t, WithOTelBridge("github.com/gabapcia/nodewatch"))

	Info(context.Background(), "fetched peers")

	assert.Contains(t, buf.String(), "fetched peers")
}

func TestReplace(t *testing.T) {
	resetLogger()
	t.Cleanup(resetLogger)

	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	Info(context.Background(), "fetched peers", "peers.total", 3)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "fetched peers", logs.All()[0].Message)
	assert.EqualValues(t, 3, logs.All()[0].ContextMap()["peers.total"])

	restore()
	Info(context.Background(), "dropped")
	assert.Equal(t, 1, logs.Len())
}
