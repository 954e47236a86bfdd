package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	ClientIPContextKey  = "client_ip"
	UserAgentContextKey = "user_agent"
)

// RequestInfo captures the client IP (honoring proxy headers) and
// User-Agent for audit records.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			ip = c.Get("X-Forwarded-For")
		}
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(ClientIPContextKey, ip)
		c.Locals(UserAgentContextKey, c.Get("User-Agent"))

		return c.Next()
	}
}

func ClientIP(c *fiber.Ctx) *string {
	if ip, ok := c.Locals(ClientIPContextKey).(string); ok && ip != "" {
		return &ip
	}
	return nil
}

func UserAgent(c *fiber.Ctx) *string {
	if ua, ok := c.Locals(UserAgentContextKey).(string); ok && ua != "" {
		return &ua
	}
	return nil
}
