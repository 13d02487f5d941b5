package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricOperationsTotal = "terrain.operations.total"
	metricPositionsTotal  = "terrain.positions.total"
	metricRunDuration     = "terrain.run.duration.seconds"

	attrKind   = "kind"
	attrEngine = "engine"
)

// durationBucketBoundaries covers 100µs to 30s; a million updates on a
// million positions lands near the middle.
var durationBucketBoundaries = []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// RunMetrics holds OTel instruments for a solve or explain run.
type RunMetrics struct {
	operationsTotal metric.Int64Counter
	positionsTotal  metric.Int64Counter
	runDuration     metric.Float64Histogram
}

// RunStats holds the statistics for a single run, keyed by plain strings
// so this package stays independent of the terrain types.
type RunStats struct {
	Engine     string
	Positions  int64
	Operations map[string]int64
	Duration   time.Duration
}

// NewRunMetrics creates run metric instruments from the given meter.
func NewRunMetrics(mt metric.Meter) (*RunMetrics, error) {
	ops, err := mt.Int64Counter(metricOperationsTotal,
		metric.WithDescription("Range updates applied, by kind"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricOperationsTotal, err)
	}

	positions, err := mt.Int64Counter(metricPositionsTotal,
		metric.WithDescription("Positions materialized"),
		metric.WithUnit("{position}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricPositionsTotal, err)
	}

	dur, err := mt.Float64Histogram(metricRunDuration,
		metric.WithDescription("Wall time from parse to render in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRunDuration, err)
	}

	return &RunMetrics{
		operationsTotal: ops,
		positionsTotal:  positions,
		runDuration:     dur,
	}, nil
}

// RecordRun records statistics for a completed run.
// Safe to call on a nil receiver (no-op).
func (rm *RunMetrics) RecordRun(ctx context.Context, stats RunStats) {
	if rm == nil {
		return
	}

	engineAttr := attribute.String(attrEngine, stats.Engine)

	for kind, count := range stats.Operations {
		rm.operationsTotal.Add(ctx, count,
			metric.WithAttributes(engineAttr, attribute.String(attrKind, kind)))
	}

	rm.positionsTotal.Add(ctx, stats.Positions, metric.WithAttributes(engineAttr))
	rm.runDuration.Record(ctx, stats.Duration.Seconds(), metric.WithAttributes(engineAttr))
}
