package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/govalues/fixedpoint"
	"github.com/govalues/fixedpoint/internal/metrics"
	"github.com/govalues/fixedpoint/internal/telemetry"
)

var (
	benchWidth      int
	benchIterations int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a tagged, traced benchmark of repeated Decimal arithmetic",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchWidth, "width", 64, "representation width: 32, 64, or 128")
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 1_000_000, "number of Add operations to perform")
}

// runBench tags the run with a fresh UUID (this corpus's convention for
// correlating a benchmark or trade cycle across logs and metrics),
// wraps the whole run in an OpenTelemetry span, and records a
// near-overflow counter alongside the timing so a production caller
// gets the same overflow visibility a debug build would have given it
// for free. Only the 32- and 64-bit loops feed the counter; the 128-bit
// loop calls Add directly and always reports near_overflow=0.
func runBench(cmd *cobra.Command, args []string) error {
	runID := uuid.New()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := telemetry.Init(ctx, "fixedpointcli")
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer shutdown(ctx)

	tracer := telemetry.Tracer("fixedpointcli/bench")
	_, span := tracer.Start(ctx, "bench.run")
	defer span.End()

	reg := prometheus.NewRegistry()
	nearOverflow := metrics.NewNearOverflow(reg)

	var elapsed time.Duration
	switch benchWidth {
	case 32:
		elapsed = benchAddI32(benchIterations, nearOverflow)
	case 64:
		elapsed = benchAddI64(benchIterations, nearOverflow)
	case 128:
		elapsed = benchAddI128(benchIterations)
	default:
		return fmt.Errorf("unsupported width %d (want 32, 64, or 128)", benchWidth)
	}

	metricFamilies, err := reg.Gather()
	overflowCount := 0.0
	if err == nil {
		for _, mf := range metricFamilies {
			if mf.GetName() != "fixedpoint_overflow_total" {
				continue
			}
			for _, m := range mf.GetMetric() {
				overflowCount += m.GetCounter().GetValue()
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"run=%s width=%d iterations=%d elapsed=%s near_overflow=%v\n",
		runID, benchWidth, benchIterations, elapsed, overflowCount,
	)
	return nil
}

func benchAddI32(n int, m *metrics.NearOverflow) time.Duration {
	a := fixedpoint.New[fixedpoint.I32, fixedpoint.Base10](1, -2)
	b := fixedpoint.New[fixedpoint.I32, fixedpoint.Base10](2, -2)
	start := time.Now()
	for i := 0; i < n; i++ {
		a = m.CountedAddI32(a, b)
	}
	return time.Since(start)
}

func benchAddI64(n int, m *metrics.NearOverflow) time.Duration {
	a := fixedpoint.New[fixedpoint.I64, fixedpoint.Base10](1, -2)
	b := fixedpoint.New[fixedpoint.I64, fixedpoint.Base10](2, -2)
	start := time.Now()
	for i := 0; i < n; i++ {
		a = m.CountedAddI64(a, b)
	}
	return time.Since(start)
}

func benchAddI128(n int) time.Duration {
	a := fixedpoint.New[fixedpoint.I128, fixedpoint.Base10](fixedpoint.I128FromInt64(1), -2)
	b := fixedpoint.New[fixedpoint.I128, fixedpoint.Base10](fixedpoint.I128FromInt64(2), -2)
	start := time.Now()
	for i := 0; i < n; i++ {
		a = a.Add(b)
	}
	return time.Since(start)
}
