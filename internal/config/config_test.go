package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600)
	require.NoError(t, err)

	return dir + "/"
}

const validConfig = `
Title = "Test Site"
DevMode = false

[Admin]
Password = "a real secret"

[Webserver]
Port = 8080
URL = "http://localhost:8080"
SessionSecret = "another real secret"
`

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "Test Site", cfg.Title)
	assert.Equal(t, 8080, cfg.Webserver.Port)

	// defaults applied
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
	assert.Equal(t, 24*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, "gofolio", cfg.Log.ServiceName)
	assert.Equal(t, "info", cfg.Log.LogLevel)
}

func TestReadConfigMissingPort(t *testing.T) {
	_, err := ReadConfig(writeConfig(t, `
Title = "x"
[Webserver]
URL = "http://localhost"
`))
	require.ErrorIs(t, err, ErrWebServerPortCanNotBeZero)
}

func TestReadConfigRejectsDefaultPassword(t *testing.T) {
	_, err := ReadConfig(writeConfig(t, `
[Admin]
Password = "`+DefaultAdminPassword+`"

[Webserver]
Port = 8080
URL = "http://localhost"
SessionSecret = "real"
`))
	require.ErrorIs(t, err, ErrAdminPasswordNotSet)
}

func TestReadConfigRejectsEmptySessionSecret(t *testing.T) {
	_, err := ReadConfig(writeConfig(t, `
[Admin]
Password = "real"

[Webserver]
Port = 8080
URL = "http://localhost"
`))
	require.ErrorIs(t, err, ErrSessionSecretNotSet)
}

func TestReadConfigDevModeAllowsMissingSecrets(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, `
DevMode = true

[Webserver]
Port = 8080
URL = "http://localhost"
`))
	require.NoError(t, err)
	assert.True(t, cfg.DevMode)
}

func TestReadConfigSecretsFromEnv(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "env secret")
	t.Setenv("SESSION_SECRET", "env session secret")

	cfg, err := ReadConfig(writeConfig(t, `
[Webserver]
Port = 8080
URL = "http://localhost"
`))
	require.NoError(t, err)
	assert.Equal(t, "env secret", cfg.Admin.Password)
	assert.Equal(t, "env session secret", cfg.Webserver.SessionSecret)
}

func TestReadConfigJSONOverride(t *testing.T) {
	t.Setenv("GOFOLIO_CONFIG_JSON", `{"Title":"Overridden"}`)

	cfg, err := ReadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, "Overridden", cfg.Title)
}
