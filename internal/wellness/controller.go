package wellness

import (
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/models"
)

type Controller struct {
	useCase *UseCase
	log     *zap.Logger
	tracer  trace.Tracer
}

func NewController(useCase *UseCase, log *zap.Logger, tracer trace.Tracer) *Controller {
	return &Controller{useCase: useCase, log: log, tracer: tracer}
}

// Latest serves the most recent wellness check-in, mirroring the orders
// endpoint contract with an entry payload instead of an order.
func (ct *Controller) Latest(c *fiber.Ctx) error {
	ctx, span := ct.tracer.Start(c.UserContext(), "Controller.LatestCheckIn",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	res := ct.useCase.RetrieveLatest(ctx)
	switch res.Outcome {
	case models.OutcomeNotFound:
		span.SetStatus(codes.Error, "store not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"ok":         false,
			"message":    "no wellness.json found",
			"candidates": res.Candidates,
			"found":      res.Found,
		})
	case models.OutcomeParseError:
		span.SetStatus(codes.Error, "store is not valid JSON")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":      false,
			"message": "parse error",
			"file":    res.File,
			"error":   res.Err,
		})
	case models.OutcomeReadError:
		span.SetStatus(codes.Error, "store unreadable")
		ct.log.Error("latest check-in request failed", zap.String("error", res.Err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": res.Err,
		})
	}

	span.SetStatus(codes.Ok, "")
	return c.JSON(fiber.Map{
		"ok":    true,
		"file":  res.File,
		"entry": res.Record,
	})
}
