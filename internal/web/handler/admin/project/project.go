// Package project implements the admin CRUD screens for portfolio projects,
// including the optional case-study fields.
package project

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/sanitize"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// Path is the path to the project list page.
	Path = "/admin/projects"

	// ListTemplate is the name of the project list template.
	ListTemplate = "admin/projects"

	// FormTemplate is the name of the project create/edit template.
	FormTemplate = "admin/project_form"
)

// ErrTitleRequired is returned when the submitted project has no title.
var ErrTitleRequired = errors.New("project title is required")

// form is the project create/edit payload.
type form struct {
	Title            string `form:"title"`
	Description      string `form:"description"`
	ShortDescription string `form:"short_description"`
	ImageURL         string `form:"image_url"`
	DemoURL          string `form:"demo_url"`
	GithubURL        string `form:"github_url"`
	Technologies     string `form:"technologies"`
	Category         string `form:"category"`
	Year             string `form:"year"`
	Client           string `form:"client"`
	Featured         bool   `form:"featured"`
	SortOrder        int    `form:"sort_order"`

	CaseStudy    string `form:"case_study"`
	Challenge    string `form:"challenge"`
	Approach     string `form:"approach"`
	Results      string `form:"results"`
	Metrics      string `form:"metrics"`
	HasCaseStudy bool   `form:"has_case_study"`
}

// apply sanitizes the form and copies it onto the model. The case-study
// body fields keep formatting tags, everything else is plain text.
func (f *form) apply(p *models.Project) error {
	title := sanitize.Plain(f.Title, sanitize.DefaultPlainMax)
	if title == "" {
		return ErrTitleRequired
	}

	p.Title = title
	p.Description = sanitize.Plain(f.Description, sanitize.DefaultRichMax)
	p.ShortDescription = sanitize.Plain(f.ShortDescription, sanitize.DefaultPlainMax)
	p.ImageURL = sanitize.Plain(f.ImageURL, sanitize.DefaultPlainMax)
	p.DemoURL = sanitize.Plain(f.DemoURL, sanitize.DefaultPlainMax)
	p.GithubURL = sanitize.Plain(f.GithubURL, sanitize.DefaultPlainMax)
	p.Technologies = sanitize.Plain(f.Technologies, sanitize.DefaultPlainMax)
	p.Category = sanitize.Plain(f.Category, sanitize.DefaultPlainMax)
	p.Year = sanitize.Plain(f.Year, sanitize.DefaultPlainMax)
	p.Client = sanitize.Plain(f.Client, sanitize.DefaultPlainMax)
	p.Featured = f.Featured
	p.SortOrder = f.SortOrder

	p.CaseStudy = sanitize.Rich(f.CaseStudy, sanitize.DefaultRichMax)
	p.Challenge = sanitize.Rich(f.Challenge, sanitize.DefaultRichMax)
	p.Approach = sanitize.Rich(f.Approach, sanitize.DefaultRichMax)
	p.Results = sanitize.Rich(f.Results, sanitize.DefaultRichMax)
	p.Metrics = sanitize.Plain(f.Metrics, sanitize.DefaultRichMax)
	p.HasCaseStudy = f.HasCaseStudy

	return nil
}

// Service is the project handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the project handler.
var Handler = Service{}

// Init initializes the project handler.
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

// List renders every project ordered for the admin table.
func (s *Service) List(c *fiber.Ctx) error {
	var projects []models.Project
	if result := s.db.Order("sort_order, id").Find(&projects); result.Error != nil {
		return s.renderError(c, ListTemplate, "Failed to load projects", result.Error)
	}

	return c.Render(ListTemplate, fiber.Map{
		"title":    s.cfg.Title,
		"projects": projects,
	}, handler.BaseLayout)
}

// New renders an empty project form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplate, fiber.Map{
		"title":   s.cfg.Title,
		"project": &models.Project{},
	}, handler.BaseLayout)
}

// Create persists a new project from the submitted form.
func (s *Service) Create(c *fiber.Ctx) error {
	var payload form
	if err := c.BodyParser(&payload); err != nil {
		return s.renderError(c, FormTemplate, "Invalid form data", err)
	}

	project := &models.Project{}
	if err := payload.apply(project); err != nil {
		return s.renderError(c, FormTemplate, err.Error(), err)
	}

	if result := s.db.Create(project); result.Error != nil {
		return s.renderError(c, FormTemplate, "Failed to save project", result.Error)
	}

	return c.Redirect(Path)
}

// Edit renders the form pre-filled with an existing project.
func (s *Service) Edit(c *fiber.Ctx) error {
	project, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	return c.Render(FormTemplate, fiber.Map{
		"title":   s.cfg.Title,
		"project": project,
	}, handler.BaseLayout)
}

// Update applies the submitted form to an existing project.
func (s *Service) Update(c *fiber.Ctx) error {
	project, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	var payload form
	if err := c.BodyParser(&payload); err != nil {
		return s.renderError(c, FormTemplate, "Invalid form data", err)
	}

	if err := payload.apply(project); err != nil {
		return s.renderError(c, FormTemplate, err.Error(), err)
	}

	if result := s.db.Save(project); result.Error != nil {
		return s.renderError(c, FormTemplate, "Failed to save project", result.Error)
	}

	return c.Redirect(Path)
}

// Delete removes a project.
func (s *Service) Delete(c *fiber.Ctx) error {
	project, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	if result := s.db.Delete(project); result.Error != nil {
		return s.renderError(c, ListTemplate, "Failed to delete project", result.Error)
	}

	return c.Redirect(Path)
}

func (s *Service) load(c *fiber.Ctx) (*models.Project, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, gorm.ErrRecordNotFound
	}

	var project models.Project
	if result := s.db.First(&project, id); result.Error != nil {
		return nil, result.Error
	}

	return &project, nil
}

func (s *Service) notFoundOr(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return s.renderError(c, ListTemplate, "Failed to load project", err)
}

func (s *Service) renderError(c *fiber.Ctx, template, message string, err error) error {
	log.Error().Err(err).Msg("project handler error")

	return c.Status(fiber.StatusBadRequest).Render(template, fiber.Map{
		"title": s.cfg.Title,
		"error": message,
	}, handler.BaseLayout)
}
