package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/service/auth"
	"gestion-talento/internal/service/authz"
)

const (
	UserContextKey  = "user"
	LevelContextKey = "level"
)

// AuthRequired validates the bearer token and resolves the caller's
// identity and access level once at the boundary. Core services receive
// both explicitly; nothing downstream reads the request context again.
func AuthRequired(authService auth.Service, authzService authz.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		user, err := authService.GetUserByID(c.Context(), claims.UserID)
		if err != nil || user == nil {
			return Unauthorized("User not found")
		}

		level, err := authzService.CurrentLevel(c.Context(), user.ID)
		if err != nil {
			return err
		}

		c.Locals(UserContextKey, user)
		c.Locals(LevelContextKey, level)

		return c.Next()
	}
}

func CurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func CurrentUserID(c *fiber.Ctx) uuid.UUID {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return uuid.Nil
}

func CurrentLevel(c *fiber.Ctx) domain.Level {
	level, ok := c.Locals(LevelContextKey).(domain.Level)
	if !ok {
		return domain.LevelEmployee
	}
	return level
}
