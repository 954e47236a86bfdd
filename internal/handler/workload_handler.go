package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestion-talento/internal/middleware"
	"gestion-talento/internal/service/workload"
)

type WorkloadHandler struct {
	workloadService workload.Service
}

func NewWorkloadHandler(workloadService workload.Service) *WorkloadHandler {
	return &WorkloadHandler{workloadService: workloadService}
}

func (h *WorkloadHandler) CurrentLoad(c *fiber.Ctx) error {
	summary, err := h.workloadService.CurrentLoad(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

func (h *WorkloadHandler) Snapshot(c *fiber.Ctx) error {
	period := c.Query("period")

	snapshot, err := h.workloadService.SnapshotPeriod(c.Context(), middleware.CurrentUserID(c), period)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(snapshot)
}

func (h *WorkloadHandler) History(c *fiber.Ctx) error {
	result, err := h.workloadService.History(c.Context(), middleware.CurrentUserID(c), getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
