// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv("GOFOLIO_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	mergeSecretsFromEnv(&c)

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// mergeSecretsFromEnv overrides secret values from plain environment
// variables, so secrets never need to live in the TOML file.
func mergeSecretsFromEnv(c *Config) {
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}

	if v := os.Getenv("ADMIN_TOTP_SECRET"); v != "" {
		c.Admin.TOTPSecret = v
	}

	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Webserver.SessionSecret = v
	}
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings for gofolio.
//
// A missing or known-default admin password or session secret is a fatal
// misconfiguration outside dev mode: the process refuses to start rather
// than serve an admin dashboard anyone can walk into.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = 24 * time.Hour
	}

	if c.Log.ServiceName == "" {
		c.Log.ServiceName = "gofolio"
	}

	if c.Log.LogLevel == "" {
		c.Log.LogLevel = "info"
	}

	if !c.DevMode {
		if c.Admin.Password == "" || c.Admin.Password == DefaultAdminPassword {
			return errors.Wrap(ErrAdminPasswordNotSet, invalidErrMessage)
		}

		if c.Webserver.SessionSecret == "" || c.Webserver.SessionSecret == DefaultSessionSecret {
			return errors.Wrap(ErrSessionSecretNotSet, invalidErrMessage)
		}
	}

	return nil
}
