package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_NotFound(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
}

func TestFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")
	assert.NotNil(t, FromContext(ctx))
}

func TestWithDataset(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	ctx, log := WithDataset(context.Background(), zap.New(core), "data/sample.json")
	log.Info("Loaded dataset")
	FromContext(ctx).Info("From context")

	assert.Equal(t, "data/sample.json", GetDataset(ctx))
	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, "data/sample.json", entry.ContextMap()["dataset"])
	}
}

func TestGetDataset_NotFound(t *testing.T) {
	assert.Empty(t, GetDataset(context.Background()))
}

func validSpanContext() trace.SpanContext {
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:     trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		TraceFlags: trace.FlagsSampled,
	})
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestGetTraceID_InvalidSpanContext(t *testing.T) {
	// Noop spans carry an invalid span context
	ctx, span := noop.NewTracerProvider().Tracer("test").Start(context.Background(), "noop")
	defer span.End()

	assert.Empty(t, GetTraceID(ctx))
}

func TestGetTraceID_WithSpan(t *testing.T) {
	ctx := trace.ContextWithSpanContext(context.Background(), validSpanContext())
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", GetTraceID(ctx))
}

func TestWithTraceContext_NoSpan(t *testing.T) {
	base := zap.NewNop()
	assert.Same(t, base, WithTraceContext(context.Background(), base))
}

func TestWithTraceContext_WithSpan(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := trace.ContextWithSpanContext(context.Background(), validSpanContext())

	WithTraceContext(ctx, zap.New(core)).Info("traced")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", fields["trace_id"])
	assert.Equal(t, "0102030405060708", fields["span_id"])
}
