// Package logger provides a global, sugared Zap logger. Log calls take a
// context so that records emitted inside a traced operation carry the
// OpenTelemetry trace and span IDs.
package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatJSON emits one JSON object per line.
	FormatJSON = "json"

	// FormatConsole emits human-readable, tab-separated lines.
	FormatConsole = "console"
)

var (
	// logger is a no-op until Init or Replace runs, so packages can log from
	// tests without any setup.
	logger atomic.Pointer[zap.SugaredLogger]

	initOnce sync.Once
)

func init() {
	logger.Store(zap.NewNop().Sugar())
}

// Replace swaps the global logger for l and returns a function that restores
// the previous one. Tests use it to capture records with zaptest/observer.
func Replace(l *zap.Logger) (restore func()) {
	prev := logger.Swap(l.Sugar())
	return func() {
		logger.Store(prev)
	}
}

type config struct {
	level      string
	format     string
	sink       zapcore.WriteSyncer
	bridgeName string
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level ("debug", "info", "warn", "error").
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithFormat selects FormatJSON or FormatConsole.
func WithFormat(f string) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithSink redirects output. Defaults to stdout.
func WithSink(w zapcore.WriteSyncer) Option {
	return func(c *config) {
		c.sink = w
	}
}

// WithOTelBridge also sends every record to the global OpenTelemetry logger
// provider under the instrumentation scope name. Call it after telemetry.Init.
func WithOTelBridge(name string) Option {
	return func(c *config) {
		c.bridgeName = name
	}
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case FormatJSON:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	case FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// leveledCore drops entries below level before they reach the wrapped core.
type leveledCore struct {
	zapcore.Core
	level zapcore.LevelEnabler
}

func (c leveledCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c leveledCore) With(fields []zapcore.Field) zapcore.Core {
	return leveledCore{Core: c.Core.With(fields), level: c.level}
}

func (c leveledCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.level.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

// Init configures the global logger. Only the first successful call takes
// effect; later calls are no-ops.
func Init(opts ...Option) error {
	cfg := config{
		level:  "info",
		format: FormatJSON,
		sink:   zapcore.AddSync(os.Stdout),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	encoder, err := newEncoder(cfg.format)
	if err != nil {
		return err
	}

	core := zapcore.NewCore(encoder, cfg.sink, level)
	if cfg.bridgeName != "" {
		core = zapcore.NewTee(core, leveledCore{Core: otelzap.NewCore(cfg.bridgeName), level: level})
	}

	initOnce.Do(func() {
		Replace(zap.New(core))
	})

	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger.Load().Sync()
}

// fromCtx returns the global logger, annotated with the span carried by ctx if any.
func fromCtx(ctx context.Context) *zap.SugaredLogger {
	l := logger.Load()
	if ctx == nil {
		return l
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}

	return l.With(
		"trace_id", sc.TraceID().String(),
		"span_id", sc.SpanID().String(),
	)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Errorw(msg, keysAndValues...)
}
