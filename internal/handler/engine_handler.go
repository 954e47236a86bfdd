package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/middleware"
	"gestion-talento/internal/service/audit"
	"gestion-talento/internal/service/retention"
	"gestion-talento/internal/service/sweep"
)

// EngineHandler exposes the externally triggered engine operations:
// the deadline sweep, the retention purge and welcome provisioning.
type EngineHandler struct {
	sweepService     sweep.Service
	retentionService retention.Service
	auditService     audit.Service
}

func NewEngineHandler(sweepService sweep.Service, retentionService retention.Service, auditService audit.Service) *EngineHandler {
	return &EngineHandler{
		sweepService:     sweepService,
		retentionService: retentionService,
		auditService:     auditService,
	}
}

func (h *EngineHandler) TriggerDeadlineSweep(c *fiber.Ctx) error {
	result, err := h.sweepService.RunDeadlineSweep(c.Context(), time.Now())
	if err != nil {
		return err
	}

	_ = h.auditService.Record(c.Context(), middleware.CurrentUserID(c), domain.AuditActionDeadlineSweep,
		"sweep", middleware.CurrentUserID(c), result, middleware.ClientIP(c), middleware.UserAgent(c))

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *EngineHandler) TriggerRetentionCleanup(c *fiber.Ctx) error {
	days := h.retentionService.DefaultHorizon()
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.BadRequest("days must be an integer")
		}
		// Zero means "use the default"; negatives reach the service and
		// are rejected there.
		if parsed != 0 {
			days = parsed
		}
	}

	deleted, err := h.retentionService.Purge(c.Context(), middleware.CurrentLevel(c), days)
	if err != nil {
		return err
	}

	_ = h.auditService.Record(c.Context(), middleware.CurrentUserID(c), domain.AuditActionRetentionPurge,
		"notification", middleware.CurrentUserID(c),
		fiber.Map{"days": days, "deleted": deleted}, middleware.ClientIP(c), middleware.UserAgent(c))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": deleted, "days": days})
}

type welcomeRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

func (h *EngineHandler) TriggerWelcome(c *fiber.Ctx) error {
	var req welcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	caller := middleware.CurrentUser(c)
	input := sweep.WelcomeInput{
		CallerID:    caller.ID,
		CallerLevel: middleware.CurrentLevel(c),
		TargetID:    caller.ID,
		DisplayName: req.DisplayName,
	}
	if req.UserID != "" {
		targetID, err := uuid.Parse(req.UserID)
		if err != nil {
			return middleware.BadRequest("user_id must be a valid UUID")
		}
		input.TargetID = targetID
	}
	if input.DisplayName == "" {
		input.DisplayName = caller.FullName
	}

	created, err := h.sweepService.SendWelcome(c.Context(), input)
	if err != nil {
		return err
	}

	if created {
		_ = h.auditService.Record(c.Context(), caller.ID, domain.AuditActionWelcome,
			"notification", input.TargetID, nil, middleware.ClientIP(c), middleware.UserAgent(c))
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"created": created, "user_id": input.TargetID})
}
