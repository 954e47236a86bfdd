package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/middleware"
	"gestion-talento/internal/service/profile"
)

type ProfileHandler struct {
	profileService profile.Service
}

func NewProfileHandler(profileService profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) AddSkill(c *fiber.Ctx) error {
	var input domain.SkillInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	skill, err := h.profileService.AddSkill(c.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

func (h *ProfileHandler) UpdateSkill(c *fiber.Ctx) error {
	skillID, err := parseUUIDParam(c, "skillId")
	if err != nil {
		return err
	}

	var input domain.SkillInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	skill, err := h.profileService.UpdateSkill(c.Context(), middleware.CurrentUserID(c), skillID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(skill)
}

func (h *ProfileHandler) ListSkills(c *fiber.Ctx) error {
	skills, err := h.profileService.ListSkills(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": skills})
}

func (h *ProfileHandler) DeleteSkill(c *fiber.Ctx) error {
	skillID, err := parseUUIDParam(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.profileService.DeleteSkill(c.Context(), middleware.CurrentUserID(c), skillID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	var input domain.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	entry, err := h.profileService.AddExperience(c.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *ProfileHandler) UpdateExperience(c *fiber.Ctx) error {
	entryID, err := parseUUIDParam(c, "entryId")
	if err != nil {
		return err
	}

	var input domain.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	entry, err := h.profileService.UpdateExperience(c.Context(), middleware.CurrentUserID(c), entryID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}

func (h *ProfileHandler) ListExperience(c *fiber.Ctx) error {
	entries, err := h.profileService.ListExperience(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": entries})
}

func (h *ProfileHandler) DeleteExperience(c *fiber.Ctx) error {
	entryID, err := parseUUIDParam(c, "entryId")
	if err != nil {
		return err
	}

	if err := h.profileService.DeleteExperience(c.Context(), middleware.CurrentUserID(c), entryID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
