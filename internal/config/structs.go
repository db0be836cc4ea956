package config

import (
	"time"

	"github.com/gofolio/gofolio/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Admin holds the credentials for the single admin account.
type Admin struct {
	// Password is either the plain admin secret or an argon2id hash of it.
	Password string
	// TOTPSecret enables a TOTP second factor on login when set.
	TOTPSecret string
}

// Analytics holds the visit tracking settings.
type Analytics struct {
	// RetentionDays is how long page visits are kept before the daily
	// purge deletes them. Zero means the default of 90 days.
	RetentionDays int
}

// Lockout holds the login failure tracker settings.
type Lockout struct {
	// RedisURL switches the tracker to a shared redis backing store when
	// set. Required for multi-instance deployments; the default
	// in-process tracker is not shared across processes.
	RedisURL string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Admin     Admin
	Analytics Analytics
	Lockout   Lockout
	Notify    Notify
	Webserver Webserver
}

// Notify holds the outbound contact-form notification settings.
type Notify struct {
	// WebhookURL receives a JSON payload for every contact-form
	// submission. Empty disables notification.
	WebhookURL string
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain        string  // domain name for the webserver
	Port          int     // listening port for the webserver
	ShutDownTime  int     // wait time for shutdown
	URL           string  // base url for the webserver
	SessionSecret string  // secret for session id derivation
	Session       Session // session settings
}
