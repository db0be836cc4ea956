// Package experience implements the admin CRUD screens for the work history
// timeline.
package experience

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/sanitize"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// Path is the path to the experience list page.
	Path = "/admin/experience"

	// ListTemplate is the name of the experience list template.
	ListTemplate = "admin/experience"

	// FormTemplate is the name of the experience create/edit template.
	FormTemplate = "admin/experience_form"
)

// ErrRoleRequired is returned when the submitted entry has no role or company.
var ErrRoleRequired = errors.New("role and company are required")

// form is the experience create/edit payload. Highlights arrive as one
// bullet per line and are stored as a JSON array.
type form struct {
	Role        string `form:"role"`
	Company     string `form:"company"`
	Location    string `form:"location"`
	DateRange   string `form:"date_range"`
	Description string `form:"description"`
	Highlights  string `form:"highlights"`
	SortOrder   int    `form:"sort_order"`
}

func (f *form) apply(e *models.Experience) error {
	role := sanitize.Plain(f.Role, sanitize.DefaultPlainMax)
	company := sanitize.Plain(f.Company, sanitize.DefaultPlainMax)

	if role == "" || company == "" {
		return ErrRoleRequired
	}

	highlights, err := encodeHighlights(f.Highlights)
	if err != nil {
		return err
	}

	e.Role = role
	e.Company = company
	e.Location = sanitize.Plain(f.Location, sanitize.DefaultPlainMax)
	e.DateRange = sanitize.Plain(f.DateRange, sanitize.DefaultPlainMax)
	e.Description = sanitize.Plain(f.Description, sanitize.DefaultRichMax)
	e.Highlights = highlights
	e.SortOrder = f.SortOrder

	return nil
}

// encodeHighlights turns newline-separated bullets into a JSON string array,
// sanitizing each line and dropping empties.
func encodeHighlights(raw string) (string, error) {
	lines := strings.Split(raw, "\n")
	bullets := make([]string, 0, len(lines))

	for _, line := range lines {
		clean := sanitize.Plain(strings.TrimSpace(line), sanitize.DefaultPlainMax)
		if clean != "" {
			bullets = append(bullets, clean)
		}
	}

	out, err := json.Marshal(bullets)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// DecodeHighlights parses the stored JSON array back into bullet strings.
// Malformed data yields an empty list rather than an error; the timeline
// renders without bullets.
func DecodeHighlights(stored string) []string {
	if stored == "" {
		return nil
	}

	var bullets []string
	if err := json.Unmarshal([]byte(stored), &bullets); err != nil {
		return nil
	}

	return bullets
}

// Service is the experience handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the experience handler.
var Handler = Service{}

// Init initializes the experience handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get("/new", s.New)
		router.Post(handler.RootPath, s.Create)
		router.Get("/:id/edit", s.Edit)
		router.Post("/:id", s.Update)
		router.Post("/:id/delete", s.Delete)
	})

	return nil
}

// List renders every timeline entry.
func (s *Service) List(c *fiber.Ctx) error {
	var entries []models.Experience
	if result := s.db.Order("sort_order, id").Find(&entries); result.Error != nil {
		return s.renderError(c, ListTemplate, "Failed to load experience", result.Error)
	}

	return c.Render(ListTemplate, fiber.Map{
		"title":   s.cfg.Title,
		"entries": entries,
	}, handler.BaseLayout)
}

// New renders an empty experience form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplate, fiber.Map{
		"title": s.cfg.Title,
		"entry": &models.Experience{},
	}, handler.BaseLayout)
}

// Create persists a new timeline entry from the submitted form.
func (s *Service) Create(c *fiber.Ctx) error {
	var payload form
	if err := c.BodyParser(&payload); err != nil {
		return s.renderError(c, FormTemplate, "Invalid form data", err)
	}

	entry := &models.Experience{}
	if err := payload.apply(entry); err != nil {
		return s.renderError(c, FormTemplate, err.Error(), err)
	}

	if result := s.db.Create(entry); result.Error != nil {
		return s.renderError(c, FormTemplate, "Failed to save entry", result.Error)
	}

	return c.Redirect(Path)
}

// Edit renders the form pre-filled with an existing entry.
func (s *Service) Edit(c *fiber.Ctx) error {
	entry, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	return c.Render(FormTemplate, fiber.Map{
		"title": s.cfg.Title,
		"entry": entry,
	}, handler.BaseLayout)
}

// Update applies the submitted form to an existing entry.
func (s *Service) Update(c *fiber.Ctx) error {
	entry, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	var payload form
	if err := c.BodyParser(&payload); err != nil {
		return s.renderError(c, FormTemplate, "Invalid form data", err)
	}

	if err := payload.apply(entry); err != nil {
		return s.renderError(c, FormTemplate, err.Error(), err)
	}

	if result := s.db.Save(entry); result.Error != nil {
		return s.renderError(c, FormTemplate, "Failed to save entry", result.Error)
	}

	return c.Redirect(Path)
}

// Delete removes an entry.
func (s *Service) Delete(c *fiber.Ctx) error {
	entry, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	if result := s.db.Delete(entry); result.Error != nil {
		return s.renderError(c, ListTemplate, "Failed to delete entry", result.Error)
	}

	return c.Redirect(Path)
}

func (s *Service) load(c *fiber.Ctx) (*models.Experience, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, gorm.ErrRecordNotFound
	}

	var entry models.Experience
	if result := s.db.First(&entry, id); result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

func (s *Service) notFoundOr(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return s.renderError(c, ListTemplate, "Failed to load entry", err)
}

func (s *Service) renderError(c *fiber.Ctx, template, message string, err error) error {
	log.Error().Err(err).Msg("experience handler error")

	return c.Status(fiber.StatusBadRequest).Render(template, fiber.Map{
		"title": s.cfg.Title,
		"error": message,
	}, handler.BaseLayout)
}
