package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log/global"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	t.Run("carries the service name", func(t *testing.T) {
		res, err := newResource(t.Context(), "nodewatch-test")
		require.NoError(t, err)

		value, ok := res.Set().Value(semconv.ServiceNameKey)
		require.True(t, ok, "service name attribute not found in resource")
		assert.Equal(t, "nodewatch-test", value.AsString())
	})

	t.Run("keeps the sdk attributes and their schema", func(t *testing.T) {
		res, err := newResource(t.Context(), "nodewatch-test")
		require.NoError(t, err)

		_, ok := res.Set().Value(attribute.Key("telemetry.sdk.name"))
		assert.True(t, ok)
		assert.Equal(t, sdkresource.Default().SchemaURL(), res.SchemaURL())
	})

	t.Run("accepts an empty service name", func(t *testing.T) {
		res, err := newResource(t.Context(), "")
		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestInit(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	originalPropagator := otel.GetTextMapPropagator()
	originalLoggerProvider := global.GetLoggerProvider()
	defer func() {
		global.SetLoggerProvider(originalLoggerProvider)
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
		otel.SetTextMapPropagator(originalPropagator)
	}()

	// The gRPC exporters connect lazily, so Init succeeds without a collector.
	shutdown, err := Init(t.Context(), "nodewatch-test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NotEqual(t, originalTracerProvider, otel.GetTracerProvider())
	assert.NotEqual(t, originalLoggerProvider, global.GetLoggerProvider())
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestNopShutdown(t *testing.T) {
	assert.NoError(t, NopShutdown(t.Context()))
}
