package main

import (
	"context"
	"errors"

	"cgpa-calculator/internal/config"
	"cgpa-calculator/internal/gpa"
	"cgpa-calculator/internal/observability"
)

// initTelemetry wires OTLP export when enabled and registers the domain
// metric instruments either way. Without export the instruments record into
// the global no-op provider. The returned func shuts every provider down.
func initTelemetry(ctx context.Context, cfg config.Telemetry) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.Enabled {
		inits := []func(context.Context, string) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitMetrics,
			observability.InitLogging,
		}
		for _, initFn := range inits {
			s, err := initFn(ctx, cfg.ServiceName)
			if err != nil {
				_ = shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, s)
		}
	}

	if err := gpa.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
