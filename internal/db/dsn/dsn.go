// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"

	"github.com/gofolio/gofolio/internal/config"
)

// MySQL builds the Data Source Name for a MySQL connection.
func MySQL(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)
}

// Postgres builds the Data Source Name for a PostgreSQL connection.
func Postgres(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Extras,
	)
}

// PostgresURI builds the URI form of the PostgreSQL DSN, used by the
// session storage backend.
func PostgresURI(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(cfg.DB.User),
		url.QueryEscape(cfg.DB.Password),
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)
}

// SQLite returns the database file path, defaulting next to the binary.
func SQLite(cfg *config.Config) string {
	if cfg.DB.Path != "" {
		return cfg.DB.Path
	}

	return "gofolio.db"
}
