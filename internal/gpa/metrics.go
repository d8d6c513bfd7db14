package gpa

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	calcCounter      metric.Int64Counter
	calcHistogram    metric.Float64Histogram
	errorCounter     metric.Int64Counter
	resultGauge      metric.Float64Gauge
	creditsHistogram metric.Float64Histogram
)

// InitMetrics registers custom OTel metric instruments for GPA calculations.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("gpa")

	var err error

	calcCounter, err = meter.Int64Counter("gpa.calculations.total",
		metric.WithDescription("Total number of successful GPA and CGPA calculations"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("gpa.calculation.duration",
		metric.WithDescription("Duration of GPA calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("gpa.errors.total",
		metric.WithDescription("Total number of rejected or failed calculations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("gpa.last_result",
		metric.WithDescription("The most recently computed GPA or CGPA"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	creditsHistogram, err = meter.Float64Histogram("gpa.credits",
		metric.WithDescription("Total credits per calculation"),
		metric.WithUnit("{credit}"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 20, 40, 80, 160, 320),
	)
	if err != nil {
		return fmt.Errorf("creating credits histogram: %w", err)
	}

	return nil
}
