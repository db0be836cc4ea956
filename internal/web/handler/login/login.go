// Package login implements the admin login page with failure lockout and an
// optional TOTP second factor.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/auth"
	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/session"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// Path is the path to the admin login page.
	Path = "/admin/login"

	// TemplateName is the name of the login template.
	TemplateName = "admin/login"

	// genericError is shown for every credential failure. The wording never
	// reveals whether the password or the one-time code was wrong.
	genericError = "Invalid password"

	lockedError = "Too many failed attempts. Try again later."
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	tracker auth.Tracker
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *gorm.DB, tracker auth.Tracker) error {
	if app == nil || cfg == nil || tracker == nil {
		return errors.New("app, cfg or tracker is nil")
	}

	s.cfg = cfg
	s.tracker = tracker

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"title": s.cfg.Title,
	}, handler.BaseLayout)
}

// form is the login form payload.
type form struct {
	Password string `form:"password"`
	TOTP     string `form:"totp"`
}

// Post handles the login form submission. The lockout check runs before any
// credential comparison so a locked client learns nothing about credential
// validity.
func (s *Service) Post(c *fiber.Ctx) error {
	clientID := c.IP()

	if s.tracker.IsLocked(clientID) {
		return c.Status(fiber.StatusTooManyRequests).Render(TemplateName, fiber.Map{
			"title": s.cfg.Title,
			"error": lockedError,
		}, handler.BaseLayout)
	}

	var payload form
	if err := c.BodyParser(&payload); err != nil {
		return s.fail(c, clientID)
	}

	if !auth.Verify(payload.Password, s.cfg.Admin.Password) {
		return s.fail(c, clientID)
	}

	if !auth.VerifyTOTP(payload.TOTP, s.cfg.Admin.TOTPSecret) {
		return s.fail(c, clientID)
	}

	s.tracker.Clear(clientID)

	if err := session.MarkAuthenticated(c, s.cfg.Webserver.Session.ExpiryTime, s.cfg.DevMode); err != nil {
		log.Error().Err(err).Msg("failed to establish session")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"title": s.cfg.Title,
			"error": "Internal server error",
		}, handler.BaseLayout)
	}

	return c.Redirect("/admin/dashboard")
}

func (s *Service) fail(c *fiber.Ctx, clientID string) error {
	s.tracker.RecordFailure(clientID)

	return c.Status(fiber.StatusUnauthorized).Render(TemplateName, fiber.Map{
		"title": s.cfg.Title,
		"error": genericError,
	}, handler.BaseLayout)
}
