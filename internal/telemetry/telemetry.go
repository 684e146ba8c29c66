// Package telemetry wires up an OpenTelemetry tracer that writes spans
// to stdout, the same exporter pairing this corpus's trading service
// initializes around its own instance ID. fixedpointcli's bench
// subcommand uses it to emit one span per benchmark run.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Init installs a stdout-exporting tracer provider under serviceName
// and returns a shutdown function the caller must invoke before exit to
// flush any buffered spans.
func Init(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("fixedpoint/telemetry: new exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("fixedpoint/telemetry: new resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// Tracer returns the package-level tracer fixedpointcli's subcommands
// use to start spans, named after the calling component.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
