package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_ReturnsWorkingShutdown(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Init(ctx, "fixedpointcli-test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(ctx))
}

func TestTracer_StartsSpanWithoutPanicking(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Init(ctx, "fixedpointcli-test")
	require.NoError(t, err)
	defer shutdown(ctx)

	tracer := Tracer("test")
	_, span := tracer.Start(ctx, "unit-test-span")
	defer span.End()
	require.True(t, span.SpanContext().IsValid())
}
