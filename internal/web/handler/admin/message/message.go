// Package message implements the admin inbox for contact form submissions.
package message

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// Path is the path to the inbox page.
	Path = "/admin/messages"

	// ListTemplate is the name of the inbox list template.
	ListTemplate = "admin/messages"

	// DetailTemplate is the name of the single message template.
	DetailTemplate = "admin/message_detail"
)

// Service is the message handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the message handler.
var Handler = Service{}

// Init initializes the message handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get("/:id", s.Detail)
		router.Post("/:id/delete", s.Delete)
	})

	return nil
}

// List renders the inbox, unread first, newest within each group.
func (s *Service) List(c *fiber.Ctx) error {
	var messages []models.Message
	if result := s.db.Order("is_read, created_at DESC").Find(&messages); result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to load messages")

		return c.Status(fiber.StatusInternalServerError).Render(ListTemplate, fiber.Map{
			"title": s.cfg.Title,
			"error": "Failed to load messages",
		}, handler.BaseLayout)
	}

	return c.Render(ListTemplate, fiber.Map{
		"title":    s.cfg.Title,
		"messages": messages,
	}, handler.BaseLayout)
}

// Detail renders one message and marks it as read.
func (s *Service) Detail(c *fiber.Ctx) error {
	message, err := s.load(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		return err
	}

	if !message.IsRead {
		message.IsRead = true
		if result := s.db.Save(message); result.Error != nil {
			log.Warn().Err(result.Error).Msg("failed to mark message read")
		}
	}

	return c.Render(DetailTemplate, fiber.Map{
		"title":   s.cfg.Title,
		"message": message,
	}, handler.BaseLayout)
}

// Delete removes a message.
func (s *Service) Delete(c *fiber.Ctx) error {
	message, err := s.load(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		return err
	}

	if result := s.db.Delete(message); result.Error != nil {
		return result.Error
	}

	return c.Redirect(Path)
}

func (s *Service) load(c *fiber.Ctx) (*models.Message, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, gorm.ErrRecordNotFound
	}

	var message models.Message
	if result := s.db.First(&message, id); result.Error != nil {
		return nil, result.Error
	}

	return &message, nil
}
