// Package public serves the visitor-facing pages: home, projects, blog and
// the contact form.
package public

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/siteconfig"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/notify"
	"github.com/gofolio/gofolio/internal/sanitize"
	"github.com/gofolio/gofolio/internal/validate"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// ContactPath is the path of the contact page and form endpoint.
	ContactPath = "/contact"

	maxBodyLen = 5000
	minBodyLen = 10
)

// Service is the public pages handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public pages handler.
var Handler = Service{}

// Init initializes the public pages handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(handler.RootPath, s.Home)
	app.Get("/about", s.About)
	app.Get("/projects", s.Projects)
	app.Get("/projects/:id", s.ProjectDetail)
	app.Get("/api/projects", s.APIProjects)
	app.Get("/blog", s.Blog)
	app.Get("/blog/:slug", s.BlogDetail)
	app.Get(ContactPath, s.Contact)
	app.Post(ContactPath, s.ContactSubmit)
	app.Get("/robots.txt", s.Robots)

	return nil
}

// Robots serves a permissive robots.txt that keeps crawlers out of the
// admin area.
func (s *Service) Robots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	return c.SendString("User-agent: *\nDisallow: /admin\n")
}

// Home renders the landing page: hero copy, featured projects, the work
// timeline and recent posts.
func (s *Service) Home(c *fiber.Ctx) error {
	hero, err := siteconfig.GetGroup(s.db, "hero")
	if err != nil {
		return s.serverError(c, err)
	}

	about, err := siteconfig.GetGroup(s.db, "about")
	if err != nil {
		return s.serverError(c, err)
	}

	var featured []models.Project
	if result := s.db.Where("featured = ?", true).Order("sort_order, id").Find(&featured); result.Error != nil {
		return s.serverError(c, result.Error)
	}

	var timeline []models.Experience
	if result := s.db.Order("sort_order, id").Find(&timeline); result.Error != nil {
		return s.serverError(c, result.Error)
	}

	var impactCards []models.ImpactCard
	if result := s.db.Order("sort_order, id").Find(&impactCards); result.Error != nil {
		return s.serverError(c, result.Error)
	}

	var recentPosts []models.BlogPost
	result := s.db.Where("published = ?", true).Order("created_at DESC").Limit(3).Find(&recentPosts)
	if result.Error != nil {
		return s.serverError(c, result.Error)
	}

	return c.Render("public/home", fiber.Map{
		"title":    s.cfg.Title,
		"hero":     hero,
		"about":    about,
		"featured": featured,
		"timeline": timeline,
		"impact":   impactCards,
		"posts":    recentPosts,
	}, handler.BaseLayout)
}

// About renders the about page: bio copy, skill clusters and spoken
// languages.
func (s *Service) About(c *fiber.Ctx) error {
	about, err := siteconfig.GetGroup(s.db, "about")
	if err != nil {
		return s.serverError(c, err)
	}

	var skills []models.SkillCluster
	if result := s.db.Order("sort_order, id").Find(&skills); result.Error != nil {
		return s.serverError(c, result.Error)
	}

	var languages []models.LanguageItem
	if result := s.db.Order("sort_order, id").Find(&languages); result.Error != nil {
		return s.serverError(c, result.Error)
	}

	return c.Render("public/about", fiber.Map{
		"title":     s.cfg.Title,
		"about":     about,
		"skills":    skills,
		"languages": languages,
	}, handler.BaseLayout)
}

// Projects renders the full project grid.
func (s *Service) Projects(c *fiber.Ctx) error {
	var projects []models.Project
	if result := s.db.Order("sort_order, id").Find(&projects); result.Error != nil {
		return s.serverError(c, result.Error)
	}

	return c.Render("public/projects", fiber.Map{
		"title":    s.cfg.Title,
		"projects": projects,
	}, handler.BaseLayout)
}

// ProjectDetail renders one project's case study. Projects without a case
// study have no detail page.
func (s *Service) ProjectDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var project models.Project
	result := s.db.First(&project, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		return s.serverError(c, result.Error)
	}

	if !project.HasCaseStudy {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.Render("public/project_detail", fiber.Map{
		"title":   s.cfg.Title,
		"project": project,
	}, handler.BaseLayout)
}

// Blog renders the published article list.
func (s *Service) Blog(c *fiber.Ctx) error {
	var posts []models.BlogPost
	result := s.db.Where("published = ?", true).Order("created_at DESC").Find(&posts)
	if result.Error != nil {
		return s.serverError(c, result.Error)
	}

	return c.Render("public/blog", fiber.Map{
		"title": s.cfg.Title,
		"posts": posts,
	}, handler.BaseLayout)
}

// BlogDetail renders one published article by slug. Drafts are invisible
// here regardless of the slug being guessable.
func (s *Service) BlogDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post models.BlogPost
	result := s.db.Where("slug = ? AND published = ?", slug, true).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		return s.serverError(c, result.Error)
	}

	return c.Render("public/blog_detail", fiber.Map{
		"title": s.cfg.Title,
		"post":  post,
	}, handler.BaseLayout)
}

// projectJSON is the wire shape of one project in the JSON listing.
type projectJSON struct {
	ID           uint64   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demo_url"`
	GithubURL    string   `json:"github_url"`
}

// APIProjects returns the project list as JSON.
func (s *Service) APIProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if result := s.db.Order("sort_order, id").Find(&projects); result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to list projects")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}

	out := make([]projectJSON, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectJSON{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Technologies: splitTechnologies(p.Technologies),
			DemoURL:      p.DemoURL,
			GithubURL:    p.GithubURL,
		})
	}

	return c.JSON(out)
}

// splitTechnologies turns the comma-separated tag list into a slice, never
// nil so the JSON field is always an array.
func splitTechnologies(tags string) []string {
	out := []string{}
	for _, tag := range strings.Split(tags, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// Contact renders the contact page.
func (s *Service) Contact(c *fiber.Ctx) error {
	intro, err := siteconfig.Get(s.db, "contact_intro", "")
	if err != nil {
		return s.serverError(c, err)
	}

	return c.Render("public/contact", fiber.Map{
		"title": s.cfg.Title,
		"intro": intro,
	}, handler.BaseLayout)
}

// contactForm is the contact submission payload.
type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// ContactSubmit validates and stores a contact message, then fires the
// webhook notification in the background. The response never depends on the
// notification outcome.
func (s *Service) ContactSubmit(c *fiber.Ctx) error {
	var payload contactForm
	if err := c.BodyParser(&payload); err != nil {
		return s.contactError(c, "Invalid form data")
	}

	name := sanitize.Plain(payload.Name, sanitize.DefaultPlainMax)
	subject := sanitize.Plain(payload.Subject, sanitize.DefaultPlainMax)
	body := sanitize.Plain(payload.Message, maxBodyLen)

	if name == "" || body == "" {
		return s.contactError(c, "Name and message are required")
	}

	if len([]rune(body)) < minBodyLen {
		return s.contactError(c, "Message is too short")
	}

	if !validate.Email(payload.Email) {
		return s.contactError(c, "A valid email address is required")
	}

	message := &models.Message{
		Name:    name,
		Email:   payload.Email,
		Subject: subject,
		Body:    body,
	}

	if result := s.db.Create(message); result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to store contact message")

		return s.contactError(c, "Something went wrong, please try again")
	}

	notify.MessageReceived(s.cfg.Notify.WebhookURL, notify.MessagePayload{
		Name:    message.Name,
		Email:   message.Email,
		Subject: message.Subject,
		Body:    message.Body,
	})

	return c.Render("public/contact", fiber.Map{
		"title":   s.cfg.Title,
		"success": "Thanks, your message has been sent.",
	}, handler.BaseLayout)
}

func (s *Service) contactError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).Render("public/contact", fiber.Map{
		"title": s.cfg.Title,
		"error": message,
	}, handler.BaseLayout)
}

func (s *Service) serverError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("public handler error")

	return c.Status(fiber.StatusInternalServerError).Render("public/error", fiber.Map{
		"title": s.cfg.Title,
	}, handler.BaseLayout)
}
