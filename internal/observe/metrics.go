// Package observe holds the OpenTelemetry metric instruments of the import
// pipeline and the lookup API, and the provider that exposes them to
// Prometheus.
//
// Tests should build their own Metrics with NewMetrics over a ManualReader
// instead of using Default.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/UAlbertaALTLab/recording-validation-interface-sub000"

// Metrics holds all instruments. Safe for concurrent use.
type Metrics struct {
	// ImportSegments counts segments by outcome: inserted, updated,
	// unchanged, failed.
	ImportSegments metric.Int64Counter
	// ImportSkips counts skipped units by unit: directory, annotation,
	// segment.
	ImportSkips metric.Int64Counter
	// TranscodeDuration is the wall time of one ffmpeg run.
	TranscodeDuration metric.Float64Histogram

	// LookupTerms counts searched wordforms by mode (exact, fuzzy,
	// indexable) and result (matched, not_found).
	LookupTerms metric.Int64Counter
	// LookupDuration is the time to answer one lookup request.
	LookupDuration metric.Float64Histogram

	HTTPRequestDuration metric.Float64Histogram
}

var latencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
}

// NewMetrics creates every instrument on the given provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ImportSegments, err = m.Int64Counter("recval.import.segments",
		metric.WithDescription("Imported segments by outcome."),
	); err != nil {
		return nil, err
	}
	if met.ImportSkips, err = m.Int64Counter("recval.import.skips",
		metric.WithDescription("Units skipped during import by unit."),
	); err != nil {
		return nil, err
	}
	if met.TranscodeDuration, err = m.Float64Histogram("recval.transcode.duration",
		metric.WithDescription("Latency of compressing one clip."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.LookupTerms, err = m.Int64Counter("recval.lookup.terms",
		metric.WithDescription("Searched wordforms by mode and result."),
	); err != nil {
		return nil, err
	}
	if met.LookupDuration, err = m.Float64Histogram("recval.lookup.duration",
		metric.WithDescription("Latency of one lookup request."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("recval.http.request.duration",
		metric.WithDescription("HTTP request latency by method, route and status."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var defaultMetrics = sync.OnceValue(func() *Metrics {
	m, err := NewMetrics(otel.GetMeterProvider())
	if err != nil {
		panic("observe: create default metrics: " + err.Error())
	}
	return m
})

// Default returns metrics registered on the global meter provider.
func Default() *Metrics {
	return defaultMetrics()
}

// RecordSegment counts one imported segment.
func (m *Metrics) RecordSegment(ctx context.Context, outcome string) {
	m.ImportSegments.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordSkip counts one skipped unit.
func (m *Metrics) RecordSkip(ctx context.Context, unit string) {
	m.ImportSkips.Add(ctx, 1, metric.WithAttributes(attribute.String("unit", unit)))
}

// RecordTranscode records the duration of a transcoder run started at start.
func (m *Metrics) RecordTranscode(ctx context.Context, start time.Time) {
	m.TranscodeDuration.Record(ctx, time.Since(start).Seconds())
}

// RecordLookup records a finished lookup request.
func (m *Metrics) RecordLookup(ctx context.Context, mode string, matched, notFound int, start time.Time) {
	modeAttr := attribute.String("mode", mode)
	if matched > 0 {
		m.LookupTerms.Add(ctx, int64(matched), metric.WithAttributes(modeAttr, attribute.String("result", "matched")))
	}
	if notFound > 0 {
		m.LookupTerms.Add(ctx, int64(notFound), metric.WithAttributes(modeAttr, attribute.String("result", "not_found")))
	}
	m.LookupDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(modeAttr))
}
