// Package metrics records validation outcomes with OpenTelemetry and exposes them
// through a private Prometheus registry. Validation runs are short lived, so the
// registry is flushed to a file for a node exporter textfile collector instead
// of being scraped.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Provider owns the meter provider that validation metrics are created from and
// the registry they are exported to.
type Provider struct {
	meterProvider *metric.MeterProvider
	registry      *prometheus.Registry
}

// NewProvider wires an OpenTelemetry meter provider to a fresh Prometheus
// registry. Metric names are prefixed by NewBusinessMetrics, not here.
func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	return &Provider{
		meterProvider: metric.NewMeterProvider(metric.WithReader(exporter)),
		registry:      registry,
	}, nil
}

// Gatherer returns the registry holding the validation metrics.
func (p *Provider) Gatherer() prometheus.Gatherer {
	return p.registry
}

// WriteToTextfile dumps the validation metrics collected so far to path. The
// file is replaced atomically so a collector never reads a partial run.
func (p *Provider) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// MeterProvider returns the meter provider used by NewBusinessMetrics.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Shutdown stops the meter provider. Write the textfile before calling it.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
