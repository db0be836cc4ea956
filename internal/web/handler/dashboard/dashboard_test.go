package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/visit"
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
	require.NoError(t, db.AutoMigrate(&models.PageVisit{}, &models.Message{}))

	app := fiber.New(fiber.Config{Views: noOpViews{}})

	svc := Service{}
	require.NoError(t, svc.Init(app, &config.Config{Title: "test"}, db))

	return app, db
}

func TestGetEmptyDatabase(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCollect(t *testing.T) {
	app, db := newTestApp(t)
	now := time.Now()

	_, err := visit.Record(db, visit.Capture{Path: "/", IP: "198.51.100.1"}, now)
	require.NoError(t, err)
	_, err = visit.Record(db, visit.Capture{Path: "/blog", IP: "198.51.100.2"}, now)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Message{Name: "a", Email: "a@b.c", Subject: "s", Body: "b"}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	svc := Service{db: db, cfg: &config.Config{}}
	stats, err := svc.collect()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalVisits)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 1, stats.UnreadMessages)
	assert.Len(t, stats.DailySeries, SeriesDays)
	assert.InDelta(t, 100.0, stats.BounceRate, 0.01)
}
