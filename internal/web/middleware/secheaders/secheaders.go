// Package secheaders sets the baseline security response headers on every
// request.
package secheaders

import (
	"github.com/gofiber/fiber/v2"
)

// Middleware adds security headers to all responses.
func Middleware(c *fiber.Ctx) error {
	c.Set("X-Content-Type-Options", "nosniff")
	c.Set("X-Frame-Options", "DENY")
	c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

	return c.Next()
}
