// Package blogpost implements the admin CRUD screens for blog articles.
package blogpost

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/sanitize"
	"github.com/gofolio/gofolio/internal/validate"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// Path is the path to the blog post list page.
	Path = "/admin/posts"

	// ListTemplate is the name of the post list template.
	ListTemplate = "admin/posts"

	// FormTemplate is the name of the post create/edit template.
	FormTemplate = "admin/post_form"

	// wordsPerMinute drives the estimated read time.
	wordsPerMinute = 200
)

// ErrTitleRequired is returned when the submitted post has no title.
var ErrTitleRequired = errors.New("post title is required")

// form is the blog post create/edit payload.
type form struct {
	Title      string `form:"title"`
	Slug       string `form:"slug"`
	Excerpt    string `form:"excerpt"`
	Content    string `form:"content"`
	CoverImage string `form:"cover_image"`
	Category   string `form:"category"`
	Tags       string `form:"tags"`
	Published  bool   `form:"published"`
	Featured   bool   `form:"featured"`
	SortOrder  int    `form:"sort_order"`
}

// apply sanitizes the form and copies it onto the model. An empty slug is
// derived from the title; the read time is recomputed from the content.
func (f *form) apply(p *models.BlogPost) error {
	title := sanitize.Plain(f.Title, sanitize.DefaultPlainMax)
	if title == "" {
		return ErrTitleRequired
	}

	slug := validate.Slug(f.Slug)
	if slug == "" {
		slug = validate.Slug(title)
	}

	p.Title = title
	p.Slug = slug
	p.Excerpt = sanitize.Plain(f.Excerpt, sanitize.DefaultPlainMax)
	p.Content = sanitize.Rich(f.Content, sanitize.DefaultRichMax)
	p.CoverImage = sanitize.Plain(f.CoverImage, sanitize.DefaultPlainMax)
	p.Category = sanitize.Plain(f.Category, sanitize.DefaultPlainMax)
	p.Tags = sanitize.Plain(f.Tags, sanitize.DefaultPlainMax)
	p.ReadTime = readTime(p.Content)
	p.Published = f.Published
	p.Featured = f.Featured
	p.SortOrder = f.SortOrder

	return nil
}

// readTime estimates minutes to read the sanitized content, never below one.
func readTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 && utf8.RuneCountInString(content) > 0 {
		words = 1
	}

	minutes := words / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}

// Service is the blog post handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the blog post handler.
var Handler = Service{}

// Init initializes the blog post handler.
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

// List renders every post, drafts included.
func (s *Service) List(c *fiber.Ctx) error {
	var posts []models.BlogPost
	if result := s.db.Order("created_at DESC").Find(&posts); result.Error != nil {
		return s.renderError(c, ListTemplate, "Failed to load posts", result.Error)
	}

	return c.Render(ListTemplate, fiber.Map{
		"title": s.cfg.Title,
		"posts": posts,
	}, handler.BaseLayout)
}

// New renders an empty post form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplate, fiber.Map{
		"title": s.cfg.Title,
		"post":  &models.BlogPost{},
	}, handler.BaseLayout)
}

// Create persists a new post from the submitted form.
func (s *Service) Create(c *fiber.Ctx) error {
	var payload form
	if err := c.BodyParser(&payload); err != nil {
		return s.renderError(c, FormTemplate, "Invalid form data", err)
	}

	post := &models.BlogPost{}
	if err := payload.apply(post); err != nil {
		return s.renderError(c, FormTemplate, err.Error(), err)
	}

	if result := s.db.Create(post); result.Error != nil {
		return s.renderError(c, FormTemplate, "Failed to save post", result.Error)
	}

	return c.Redirect(Path)
}

// Edit renders the form pre-filled with an existing post.
func (s *Service) Edit(c *fiber.Ctx) error {
	post, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	return c.Render(FormTemplate, fiber.Map{
		"title": s.cfg.Title,
		"post":  post,
	}, handler.BaseLayout)
}

// Update applies the submitted form to an existing post.
func (s *Service) Update(c *fiber.Ctx) error {
	post, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	var payload form
	if err := c.BodyParser(&payload); err != nil {
		return s.renderError(c, FormTemplate, "Invalid form data", err)
	}

	if err := payload.apply(post); err != nil {
		return s.renderError(c, FormTemplate, err.Error(), err)
	}

	if result := s.db.Save(post); result.Error != nil {
		return s.renderError(c, FormTemplate, "Failed to save post", result.Error)
	}

	return c.Redirect(Path)
}

// Delete removes a post.
func (s *Service) Delete(c *fiber.Ctx) error {
	post, err := s.load(c)
	if err != nil {
		return s.notFoundOr(c, err)
	}

	if result := s.db.Delete(post); result.Error != nil {
		return s.renderError(c, ListTemplate, "Failed to delete post", result.Error)
	}

	return c.Redirect(Path)
}

func (s *Service) load(c *fiber.Ctx) (*models.BlogPost, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, gorm.ErrRecordNotFound
	}

	var post models.BlogPost
	if result := s.db.First(&post, id); result.Error != nil {
		return nil, result.Error
	}

	return &post, nil
}

func (s *Service) notFoundOr(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return s.renderError(c, ListTemplate, "Failed to load post", err)
}

func (s *Service) renderError(c *fiber.Ctx, template, message string, err error) error {
	log.Error().Err(err).Msg("blog post handler error")

	return c.Status(fiber.StatusBadRequest).Render(template, fiber.Map{
		"title": s.cfg.Title,
		"error": message,
	}, handler.BaseLayout)
}
