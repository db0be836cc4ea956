// Package sitecontent implements the admin editor for the key-value site
// copy: hero text, about section, social links.
package sitecontent

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/siteconfig"
	"github.com/gofolio/gofolio/internal/sanitize"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// Path is the path to the site content editor.
	Path = "/admin/content"

	// TemplateName is the name of the content editor template.
	TemplateName = "admin/content"

	// FieldPrefix marks which form fields map to config keys. Everything
	// else in the form body (buttons, tokens) is ignored.
	FieldPrefix = "cfg_"
)

// richKeys lists the config keys whose values may carry formatted HTML.
// Every key not listed here is treated as plain text, so a newly added key
// can never accept markup by omission.
var richKeys = map[string]bool{ //nolint:gochecknoglobals
	"about_bio":      true,
	"hero_tagline":   true,
	"footer_text":    true,
	"contact_intro":  true,
	"projects_intro": true,
	"blog_intro":     true,
}

// Mode returns the sanitization mode for a config key.
func Mode(key string) sanitize.Mode {
	if richKeys[key] {
		return sanitize.ModeRich
	}

	return sanitize.ModePlain
}

// Service is the site content handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the site content handler.
var Handler = Service{}

// Init initializes the site content handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get renders the editor with every config entry grouped by section.
func (s *Service) Get(c *fiber.Ctx) error {
	entries, err := siteconfig.All(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site content")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"title": s.cfg.Title,
			"error": "Failed to load content",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"title":   s.cfg.Title,
		"entries": entries,
	}, handler.BaseLayout)
}

// Post saves every cfg_-prefixed form field as a config entry, sanitized
// according to the key's mode.
func (s *Service) Post(c *fiber.Ctx) error {
	args := c.Request().PostArgs()

	var saveErr error

	args.VisitAll(func(rawKey, rawValue []byte) {
		if saveErr != nil {
			return
		}

		name := string(rawKey)
		if !strings.HasPrefix(name, FieldPrefix) {
			return
		}

		key := strings.TrimPrefix(name, FieldPrefix)

		mode := Mode(key)
		max := sanitize.DefaultPlainMax
		if mode == sanitize.ModeRich {
			max = sanitize.DefaultRichMax
		}

		value := sanitize.Apply(mode, string(rawValue), max)

		if _, err := siteconfig.Set(s.db, key, value); err != nil {
			saveErr = err
		}
	})

	if saveErr != nil {
		log.Error().Err(saveErr).Msg("failed to save site content")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"title": s.cfg.Title,
			"error": "Failed to save content",
		}, handler.BaseLayout)
	}

	return c.Redirect(Path)
}
