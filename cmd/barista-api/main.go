package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/config"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/order"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/store"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/telemetry"
	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/wellness"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log, tracer, meter, shutdown, err := telemetry.Setup(ctx, "barista-api")
	if err != nil {
		panic("failed to initialize telemetry: " + err.Error())
	}
	defer shutdown(context.Background())

	metrics, err := telemetry.NewMetrics(meter)
	if err != nil {
		panic("failed to create metrics: " + err.Error())
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	ordersLocator := store.NewLocator(
		store.FromEnv(config.EnvOrdersFile),
		store.Fixed(cfg.Stores.Orders.Path),
		store.Fixed(cfg.Stores.Orders.Candidates...),
		store.Conventional("orders.json"),
	)
	wellnessLocator := store.NewLocator(
		store.FromEnv(config.EnvWellnessFile),
		store.Fixed(cfg.Stores.Wellness.Path),
		store.Fixed(cfg.Stores.Wellness.Candidates...),
		store.Conventional("wellness.json"),
	)

	orderCtrl := order.NewController(
		order.NewUseCase(ordersLocator, metrics, log, tracer), log, tracer)
	wellnessCtrl := wellness.NewController(
		wellness.NewUseCase(wellnessLocator, metrics, log, tracer), log, tracer)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/latest-order", orderCtrl.Latest)
	app.Get("/latest-checkin", wellnessCtrl.Latest)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutting down barista-api...")
		_ = app.Shutdown()
		cancel()
	}()

	log.Info("barista-api listening",
		zap.String("addr", cfg.API.Addr),
		zap.Strings("order_candidates", ordersLocator.Candidates()),
	)
	if err := app.Listen(cfg.API.Addr); err != nil {
		log.Error("server error", zap.Error(err))
	}
}
