// Package adminauth gates the admin area behind a valid login session.
package adminauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gofolio/gofolio/internal/session"
)

const (
	// LoginPath is where unauthenticated admin requests are sent.
	LoginPath = "/admin/login"

	// DashboardPath is where an already-authenticated visit to the login
	// page is sent instead.
	DashboardPath = "/admin/dashboard"
)

// Middleware checks every /admin request for a valid session. The login page
// itself stays reachable without one, and an authenticated visit to the login
// page skips straight to the dashboard.
func Middleware(c *fiber.Ctx) error {
	isLoginPage := strings.HasPrefix(strings.ToLower(c.Path()), LoginPath)
	authenticated := session.IsAuthenticated(c)

	if isLoginPage {
		if authenticated {
			return c.Redirect(DashboardPath)
		}

		return c.Next()
	}

	if !authenticated {
		return c.Redirect(LoginPath)
	}

	return c.Next()
}
