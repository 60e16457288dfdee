package wellness

import (
	"context"
	"errors"
	"time"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/models"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/store"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const storeName = "wellness"

type UseCase struct {
	locator *store.Locator
	metrics *telemetry.Metrics
	log     *zap.Logger
	tracer  trace.Tracer
}

func NewUseCase(locator *store.Locator, metrics *telemetry.Metrics, log *zap.Logger, tracer trace.Tracer) *UseCase {
	return &UseCase{locator: locator, metrics: metrics, log: log, tracer: tracer}
}

// RetrieveLatest locates the wellness store and extracts the most recent
// check-in, tagging the result the same way the orders side does.
func (uc *UseCase) RetrieveLatest(ctx context.Context) models.Retrieval {
	start := time.Now()
	ctx, span := uc.tracer.Start(ctx, "RetrieveLatestCheckIn",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	res := uc.lookup(ctx)

	attrs := metric.WithAttributes(
		attribute.String("store", storeName),
		attribute.String("outcome", res.Outcome.String()),
	)
	uc.metrics.Retrievals.Add(ctx, 1, attrs)
	uc.metrics.RetrievalDuration.Record(ctx, time.Since(start).Seconds(), attrs)

	span.SetAttributes(
		attribute.String("store.outcome", res.Outcome.String()),
		attribute.String("store.file", res.File),
	)
	switch res.Outcome {
	case models.OutcomeFound, models.OutcomeEmpty:
		span.SetStatus(codes.Ok, "")
	default:
		span.SetStatus(codes.Error, res.Outcome.String())
	}
	return res
}

func (uc *UseCase) lookup(ctx context.Context) models.Retrieval {
	_, locateSpan := uc.tracer.Start(ctx, "LocateStore")
	found, candidates := uc.locator.Locate()
	locateSpan.SetAttributes(
		attribute.Int("store.candidates", len(candidates)),
		attribute.Int("store.found", len(found)),
	)
	locateSpan.End()

	if len(found) == 0 {
		uc.log.Warn("wellness store not found", zap.Strings("candidates", candidates))
		return models.Retrieval{
			Outcome:    models.OutcomeNotFound,
			Candidates: candidates,
			Found:      found,
		}
	}

	path := found[0]
	ctx, readSpan := uc.tracer.Start(ctx, "ReadStore",
		trace.WithAttributes(attribute.String("store.file", path)),
	)
	record, entries, err := store.ReadLatest(path)
	if err != nil {
		readSpan.RecordError(err)
		readSpan.SetStatus(codes.Error, err.Error())
		readSpan.End()

		var parseErr *store.ParseError
		if errors.As(err, &parseErr) {
			uc.log.Error("wellness store is not valid JSON",
				zap.String("file", path),
				zap.Error(parseErr.Err),
			)
			return models.Retrieval{
				Outcome: models.OutcomeParseError,
				File:    path,
				Err:     parseErr.Err.Error(),
			}
		}
		uc.log.Error("wellness store unreadable", zap.String("file", path), zap.Error(err))
		return models.Retrieval{
			Outcome: models.OutcomeReadError,
			File:    path,
			Err:     err.Error(),
		}
	}
	readSpan.SetAttributes(attribute.Int("store.entries", entries))
	readSpan.SetStatus(codes.Ok, "")
	readSpan.End()

	if record == nil {
		uc.log.Info("wellness store holds no check-ins", zap.String("file", path))
		return models.Retrieval{Outcome: models.OutcomeEmpty, File: path}
	}

	uc.metrics.StoreEntries.Record(ctx, int64(entries),
		metric.WithAttributes(attribute.String("store", storeName)),
	)
	uc.log.Info("latest check-in served",
		zap.String("file", path),
		zap.Int("entries", entries),
	)
	return models.Retrieval{
		Outcome: models.OutcomeFound,
		File:    path,
		Record:  record,
		Entries: entries,
	}
}
