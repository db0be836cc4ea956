// Package tracking records one analytics event per public page view.
package tracking

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/db/controller/visit"
)

// skippedPrefixes lists path prefixes that never produce a visit: assets,
// the admin area, machine endpoints.
var skippedPrefixes = []string{ //nolint:gochecknoglobals
	"/static",
	"/admin",
	"/api",
	"/metrics",
	"/favicon",
}

// skippedPaths lists exact paths fetched by crawlers and feed readers.
var skippedPaths = []string{ //nolint:gochecknoglobals
	"/robots.txt",
	"/sitemap.xml",
	"/feed.xml",
	"/healthz",
}

var visitsRecorded = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "gofolio_page_visits_total",
	Help: "Number of page visits recorded.",
})

// New returns the tracking middleware bound to a database handle. Recording
// is strictly best effort: a storage failure is logged and the page is served
// anyway.
func New(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !shouldTrack(c) {
			return c.Next()
		}

		_, err := visit.Record(db, visit.Capture{
			Path:           c.Path(),
			Referrer:       c.Get(fiber.HeaderReferer),
			UserAgent:      c.Get(fiber.HeaderUserAgent),
			IP:             c.IP(),
			AcceptLanguage: c.Get(fiber.HeaderAcceptLanguage),
		}, time.Now())
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("failed to record visit")
		} else {
			visitsRecorded.Inc()
		}

		return c.Next()
	}
}

func shouldTrack(c *fiber.Ctx) bool {
	if c.Method() != fiber.MethodGet {
		return false
	}

	path := strings.ToLower(c.Path())

	for _, p := range skippedPaths {
		if path == p {
			return false
		}
	}

	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	return true
}
