package telemetry

import (
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	Retrievals        metric.Int64Counter
	RetrievalDuration metric.Float64Histogram
	StoreEntries      metric.Int64Histogram
	RecordsSaved      metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	retrievals, err := meter.Int64Counter("store_retrievals_total",
		metric.WithDescription("Total latest-record retrievals, by store and outcome"),
		metric.WithUnit("{retrieval}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("store_retrieval_duration_seconds",
		metric.WithDescription("Duration of latest-record retrievals"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64Histogram("store_entries",
		metric.WithDescription("Records in the store at read time"),
		metric.WithUnit("{record}"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 50, 100, 500),
	)
	if err != nil {
		return nil, err
	}

	saved, err := meter.Int64Counter("records_saved_total",
		metric.WithDescription("Records appended by the intake agent"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		Retrievals:        retrievals,
		RetrievalDuration: duration,
		StoreEntries:      entries,
		RecordsSaved:      saved,
	}, nil
}
