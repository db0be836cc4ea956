package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gofolio/gofolio/internal/config"
)

func TestMySQL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.User = "folio"
	cfg.DB.Password = "secret"
	cfg.DB.Host = "db.local"
	cfg.DB.Port = 3306
	cfg.DB.Name = "gofolio"
	cfg.DB.Extras = "charset=utf8mb4&parseTime=True"

	assert.Equal(t,
		"folio:secret@tcp(db.local:3306)/gofolio?charset=utf8mb4&parseTime=True",
		MySQL(cfg),
	)
}

func TestPostgres(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.User = "folio"
	cfg.DB.Password = "secret"
	cfg.DB.Host = "db.local"
	cfg.DB.Port = 5432
	cfg.DB.Name = "gofolio"
	cfg.DB.Extras = "sslmode=disable"

	assert.Equal(t,
		"host=db.local port=5432 user=folio password=secret dbname=gofolio sslmode=disable",
		Postgres(cfg),
	)
}

func TestSQLite(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, "gofolio.db", SQLite(cfg))

	cfg.DB.Path = "/var/lib/gofolio/site.db"
	assert.Equal(t, "/var/lib/gofolio/site.db", SQLite(cfg))
}
