package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/middleware"
	"gestion-talento/internal/service/project"
)

type ProjectHandler struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.projectService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "projectId")
	if err != nil {
		return err
	}

	found, err := h.projectService.Get(c.Context(), projectID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "projectId")
	if err != nil {
		return err
	}

	var input domain.UpdateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.projectService.Update(c.Context(), projectID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	result, err := h.projectService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ProjectHandler) Assign(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "projectId")
	if err != nil {
		return err
	}

	var input domain.CreateAssignmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	assignment, err := h.projectService.Assign(c.Context(), projectID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (h *ProjectHandler) Unassign(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "projectId")
	if err != nil {
		return err
	}
	assignmentID, err := parseUUIDParam(c, "assignmentId")
	if err != nil {
		return err
	}

	if err := h.projectService.Unassign(c.Context(), projectID, assignmentID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProjectHandler) ListAssignments(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "projectId")
	if err != nil {
		return err
	}

	assignments, err := h.projectService.ListAssignments(c.Context(), projectID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": assignments})
}
