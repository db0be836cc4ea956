// Package logout ends the admin session.
package logout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/session"
	"github.com/gofolio/gofolio/internal/web/handler"
)

// Path is the path to the logout endpoint.
const Path = "/admin/logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *gorm.DB) error {
	if app == nil || cfg == nil {
		return errors.New("app or cfg is nil")
	}

	app.Get(Path, s.Get)

	return nil
}

// Get destroys the session server-side and expires the cookie.
func (s *Service) Get(c *fiber.Ctx) error {
	session.Clear(c)

	return c.Redirect("/admin/login")
}
