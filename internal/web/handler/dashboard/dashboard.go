// Package dashboard renders the admin analytics overview.
package dashboard

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/visit"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// Path is the path to the admin dashboard page.
	Path = "/admin/dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	// TopN is how many rows the top-paths/referrers/locales tables show.
	TopN = 10

	// SeriesDays is the length of the daily visits chart.
	SeriesDays = 30

	// RecentN is how many raw visits the recent activity table shows.
	RecentN = 20
)

// Stats is the aggregate data the dashboard template renders.
type Stats struct {
	TotalVisits    int64
	VisitsLastWeek int64
	UniqueVisitors int64
	BounceRate     float64
	TopPaths       []visit.BucketCount
	TopReferrers   []visit.BucketCount
	TopLocales     []visit.BucketCount
	DailySeries    []visit.DayCount
	Breakdown      *visit.UsageBreakdown
	RecentVisits   []models.PageVisit
	UnreadMessages int64
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	stats, err := s.collect()
	if err != nil {
		log.Error().Err(err).Msg("failed to collect dashboard stats")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"title": s.cfg.Title,
			"error": "Failed to load analytics",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"title": s.cfg.Title,
		"stats": stats,
	}, handler.BaseLayout)
}

func (s *Service) collect() (*Stats, error) {
	now := time.Now()
	stats := &Stats{}

	var err error

	if stats.TotalVisits, err = visit.Count(s.db); err != nil {
		return nil, err
	}

	if stats.VisitsLastWeek, err = visit.CountSince(s.db, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}

	if stats.UniqueVisitors, err = visit.DistinctVisitors(s.db); err != nil {
		return nil, err
	}

	if stats.BounceRate, err = visit.BounceRate(s.db); err != nil {
		return nil, err
	}

	if stats.TopPaths, err = visit.TopPaths(s.db, TopN); err != nil {
		return nil, err
	}

	if stats.TopReferrers, err = visit.TopReferrers(s.db, TopN); err != nil {
		return nil, err
	}

	if stats.TopLocales, err = visit.TopLocales(s.db, TopN); err != nil {
		return nil, err
	}

	if stats.DailySeries, err = visit.DailySeries(s.db, SeriesDays, now); err != nil {
		return nil, err
	}

	if stats.Breakdown, err = visit.Breakdowns(s.db); err != nil {
		return nil, err
	}

	if stats.RecentVisits, err = visit.RecentVisits(s.db, RecentN); err != nil {
		return nil, err
	}

	result := s.db.Model(&models.Message{}).Where("is_read = ?", false).Count(&stats.UnreadMessages)
	if result.Error != nil {
		return nil, result.Error
	}

	return stats, nil
}
