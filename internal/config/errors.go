package config

import (
	"errors"
)

const (
	// DefaultAdminPassword is the placeholder shipped in etc/main.toml.
	// Production refuses to start while it is still in use.
	DefaultAdminPassword = "changeme123"

	// DefaultSessionSecret is the placeholder shipped in etc/main.toml.
	DefaultSessionSecret = "dev-key-change-in-production"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrAdminPasswordNotSet is returned when the admin password is missing
	// or still the shipped default outside dev mode.
	ErrAdminPasswordNotSet = errors.New("admin.password is missing or still the default")

	// ErrSessionSecretNotSet is returned when the session secret is missing
	// or still the shipped default outside dev mode.
	ErrSessionSecretNotSet = errors.New("webserver.sessionsecret is missing or still the default")
)
