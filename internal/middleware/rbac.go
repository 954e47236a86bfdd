package middleware

import (
	"github.com/gofiber/fiber/v2"

	"gestion-talento/internal/domain"
)

// RequireCapability gates a route on the caller's resolved level. The
// check is an exact ordinal match; levels do not escalate.
func RequireCapability(capability domain.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return Unauthorized("User not found")
		}

		if !CurrentLevel(c).Has(capability) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

// RequireAnyCapability passes when the caller's level matches any of the
// listed role capabilities.
func RequireAnyCapability(capabilities ...domain.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return Unauthorized("User not found")
		}

		level := CurrentLevel(c)
		for _, capability := range capabilities {
			if level.Has(capability) {
				return c.Next()
			}
		}

		return Forbidden("Insufficient permissions for this operation")
	}
}
