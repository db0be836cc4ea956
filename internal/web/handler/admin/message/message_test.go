package message

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
)

type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, _ interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Message{}))

	app := fiber.New(fiber.Config{Views: noOpViews{}})

	svc := Service{}
	require.NoError(t, svc.Init(app, &config.Config{Title: "test"}, db))

	return app, db
}

func seedMessage(t *testing.T, db *gorm.DB) *models.Message {
	t.Helper()

	m := &models.Message{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Body: "Hello"}
	require.NoError(t, db.Create(m).Error)

	return m
}

func TestDetailMarksRead(t *testing.T) {
	app, db := newTestApp(t)
	m := seedMessage(t, db)
	require.False(t, m.IsRead)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path+"/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Message
	require.NoError(t, db.First(&stored, 1).Error)
	assert.True(t, stored.IsRead)
}

func TestDetailMissing(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path+"/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDelete(t *testing.T) {
	app, db := newTestApp(t)
	seedMessage(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, Path+"/1/delete", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestList(t *testing.T) {
	app, db := newTestApp(t)
	seedMessage(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
