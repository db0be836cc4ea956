// Package daemon assembles the running application: database, session
// storage, lockout tracker, retention job and web service.
package daemon

import (
	"errors"
	"fmt"
	"time"

	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/auth"
	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/visit"
	"github.com/gofolio/gofolio/internal/db/dsn"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/session"
	"github.com/gofolio/gofolio/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	cron       *cron.Cron
}

// Start launches the retention job and blocks serving HTTP until shutdown.
func (d *Daemon) Start() error {
	d.cron.Start()
	defer d.cron.Stop()

	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := openDatabase(cfg)

	migrate(db)
	seed(cfg, db)

	session.Init(sessionStorage(cfg))

	tracker := newTracker(cfg)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, tracker),
		cron:       newRetentionCron(cfg, db),
	}
}

// Seed opens the database, migrates it and inserts the starter content.
// Used by the seed command to prepare a fresh deployment.
func Seed(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	db := openDatabase(cfg)
	migrate(db)
	seed(cfg, db)

	return nil
}

func openDatabase(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case "mysql":
		dialector = gormmysql.Open(dsn.MySQL(cfg))
	case "postgres":
		dialector = gormpostgres.Open(dsn.Postgres(cfg))
	case "sqlite", "":
		dialector = sqlite.Open(dsn.SQLite(cfg))
	default:
		log.Fatal().Str("engine", cfg.DB.GormEngine).Msg("unknown database engine")
		return nil
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	return db
}

func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.SiteConfigEntry{},
		&models.Project{},
		&models.BlogPost{},
		&models.Experience{},
		&models.ImpactCard{},
		&models.SkillCluster{},
		&models.LanguageItem{},
		&models.Message{},
		&models.PageVisit{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
}

// sessionStorage returns the fiber storage backend matching the database
// engine. The sqlite engine keeps sessions in memory; a restart logs the
// admin out, which is acceptable for a single-instance deployment.
func sessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.GormEngine {
	case "mysql":
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         "sessions",
		})
	case "postgres":
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.PostgresURI(cfg),
			Table:         "sessions",
		})
	default:
		return nil
	}
}

// newTracker picks the lockout backend: redis when configured, otherwise the
// in-process tracker.
func newTracker(cfg *config.Config) auth.Tracker {
	if cfg.Lockout.RedisURL == "" {
		return auth.NewMemoryTracker()
	}

	tracker, err := auth.NewRedisTracker(cfg.Lockout.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect lockout redis")
		return nil
	}

	log.Info().Msg("using redis lockout tracker")

	return tracker
}

// newRetentionCron schedules the daily purge of visits past the retention
// window.
func newRetentionCron(cfg *config.Config, db *gorm.DB) *cron.Cron {
	c := cron.New()

	days := cfg.Analytics.RetentionDays
	if days <= 0 {
		days = visit.DefaultRetentionDays
	}

	if _, err := c.AddFunc("@daily", func() {
		removed, err := visit.Purge(db, days, time.Now())
		if err != nil {
			log.Error().Err(err).Msg("visit purge failed")
			return
		}

		log.Info().Int64("removed", removed).Int("retention_days", days).Msg("visit purge completed")
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule visit purge")
	}

	return c
}
