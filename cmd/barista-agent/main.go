package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/config"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/intake"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/store"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/telemetry"
)

var (
	log     *zap.Logger
	tracer  trace.Tracer
	metrics *telemetry.Metrics

	orderStore    *store.Writer
	wellnessStore *store.Writer

	session string
	seen    map[uint64]struct{}
)

func storePath(envKey, cfgPath string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return cfgPath
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		meter    metric.Meter
		shutdown func(context.Context)
		err      error
	)

	log, tracer, meter, shutdown, err = telemetry.Setup(ctx, "barista-agent")
	if err != nil {
		panic("failed to initialize telemetry: " + err.Error())
	}
	defer shutdown(context.Background())

	metrics, err = telemetry.NewMetrics(meter)
	if err != nil {
		panic("failed to create metrics: " + err.Error())
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	orderStore = store.NewWriter(storePath(config.EnvOrdersFile, cfg.Stores.Orders.Path), log)
	wellnessStore = store.NewWriter(storePath(config.EnvWellnessFile, cfg.Stores.Wellness.Path), log)
	for _, w := range []*store.Writer{orderStore, wellnessStore} {
		if err := w.Ensure(); err != nil {
			log.Fatal("failed to prepare store", zap.String("path", w.Path()), zap.Error(err))
		}
	}

	session = uuid.NewString()
	seen = make(map[uint64]struct{})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutting down barista-agent...")
		cancel()
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			log.Error("transcript read error", zap.Error(err))
		}
	}()

	log.Info("barista-agent reading transcripts",
		zap.String("session", session),
		zap.String("orders_store", orderStore.Path()),
		zap.String("wellness_store", wellnessStore.Path()),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				log.Info("transcript stream closed")
				return
			}
			processTranscript(ctx, line)
		}
	}
}

func processTranscript(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	ctx, span := tracer.Start(ctx, "ProcessTranscript",
		trace.WithSpanKind(trace.SpanKindConsumer),
	)
	defer span.End()

	fp := intake.Fingerprint(text)
	if _, dup := seen[fp]; dup {
		log.Debug("transcript already saved, skipping", zap.String("text", text))
		span.SetStatus(codes.Ok, "duplicate")
		return
	}

	intent := intake.Detect(text)
	span.SetAttributes(attribute.String("intake.intent", intent.String()))
	log.Debug("transcript received",
		zap.String("intent", intent.String()),
		zap.String("text", text),
	)

	now := time.Now()
	switch intent {
	case intake.IntentCoffee:
		if !intake.LooksLikeOrder(text) {
			return
		}
		order := intake.BuildOrder(intake.ExtractOrderSlots(text), text, now)
		if err := orderStore.Append(order); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Error("failed to save order", zap.Error(err))
			return
		}
		seen[fp] = struct{}{}
		metrics.RecordsSaved.Add(ctx, 1, metric.WithAttributes(attribute.String("store", "orders")))
		span.SetStatus(codes.Ok, "")
		log.Info("order saved",
			zap.Int64("id", order.ID),
			zap.String("drink", order.DrinkType),
			zap.String("size", order.Size),
			zap.String("name", order.Name),
			zap.String("session", session),
		)

	case intake.IntentWellness:
		if !intake.LooksLikeCheckIn(text) {
			return
		}
		entry := intake.BuildWellnessEntry(text, "", now)
		if err := wellnessStore.Append(entry); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Error("failed to save check-in", zap.Error(err))
			return
		}
		seen[fp] = struct{}{}
		metrics.RecordsSaved.Add(ctx, 1, metric.WithAttributes(attribute.String("store", "wellness")))
		span.SetStatus(codes.Ok, "")
		log.Info("check-in saved",
			zap.Int64("id", entry.ID),
			zap.String("session", session),
		)
	}
}
