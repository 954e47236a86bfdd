package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/middleware"
	"gestion-talento/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.userService.GetProfile(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  profile,
		"level": middleware.CurrentLevel(c).String(),
	})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	profile, err := h.userService.UpdateProfile(c.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *UserHandler) AssignLevel(c *fiber.Ctx) error {
	var input domain.AssignLevelInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	change, err := h.userService.AssignLevel(c.Context(), middleware.CurrentUserID(c), middleware.CurrentLevel(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(change)
}

func (h *UserHandler) LevelHistory(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	changes, err := h.userService.LevelHistory(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": changes})
}
