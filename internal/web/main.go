// Package web wires the fiber application: template engine, middleware
// chain, handler registration and graceful shutdown.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/auth"
	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/handler/admin/blogpost"
	"github.com/gofolio/gofolio/internal/web/handler/admin/experience"
	"github.com/gofolio/gofolio/internal/web/handler/admin/message"
	"github.com/gofolio/gofolio/internal/web/handler/admin/project"
	"github.com/gofolio/gofolio/internal/web/handler/admin/sitecontent"
	"github.com/gofolio/gofolio/internal/web/handler/dashboard"
	"github.com/gofolio/gofolio/internal/web/handler/login"
	"github.com/gofolio/gofolio/internal/web/handler/logout"
	"github.com/gofolio/gofolio/internal/web/handler/public"
	"github.com/gofolio/gofolio/internal/web/middleware/adminauth"
	"github.com/gofolio/gofolio/internal/web/middleware/secheaders"
	"github.com/gofolio/gofolio/internal/web/middleware/tracking"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: report not-alive first so the
	// LB drains this instance before the listener closes.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: returning 503 for %d seconds to let the LB drain this instance",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, tracker auth.Tracker) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// sanitized rich HTML fields render unescaped; everything reaching a
	// template has already passed through the sanitizer
	templateEngine.AddFunc("unescape", func(s string) template.HTML {
		return template.HTML(s) //nolint:gosec
	})
	templateEngine.AddFunc("highlights", experience.DecodeHighlights)

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	app.Use(secheaders.Middleware)

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	app.Use(tracking.New(db))

	app.Use(handler.AdminPath, adminauth.Middleware)

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get("/healthz", service.healthz)

	// prometheus scrape endpoint, behind the admin session like the rest
	// of /admin
	app.Get("/admin/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	initHandlers(app, cfg, db, tracker)

	return service
}

// healthz reports liveness; it flips to 503 during graceful shutdown.
func (s *Service) healthz(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("ok")
}

func initHandlers(app *fiber.App, cfg *config.Config, db *gorm.DB, tracker auth.Tracker) {
	if err := login.Handler.Init(app, cfg, db, tracker); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	services := []struct {
		name string
		svc  handler.Service
	}{
		{name: "logout", svc: &logout.Handler},
		{name: "dashboard", svc: &dashboard.Handler},
		{name: "sitecontent", svc: &sitecontent.Handler},
		{name: "project", svc: &project.Handler},
		{name: "blogpost", svc: &blogpost.Handler},
		{name: "experience", svc: &experience.Handler},
		{name: "message", svc: &message.Handler},
		{name: "public", svc: &public.Handler},
	}

	for _, h := range services {
		if err := h.svc.Init(app, cfg, db); err != nil {
			log.Fatal().Err(err).Str("handler", h.name).Msg("failed to init handler")
		}
	}
}
