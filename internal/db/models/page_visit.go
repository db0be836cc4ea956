package models

import "time"

// PageVisit is one privacy-preserving page-view event.
//
// The raw visitor IP is never stored: only an unsalted SHA-256 digest is
// persisted in IPHash. The stable digest is what makes distinct-visitor
// counting possible; do not add per-record salts.
type PageVisit struct {
	ID uint64 `gorm:"primaryKey"`
	// Path of the visited page, truncated to 500 characters.
	Path string `gorm:"size:500;not null"`
	// Referrer header, truncated to 500 characters.
	Referrer string `gorm:"size:500"`
	// UserAgent string, truncated to 500 characters.
	UserAgent string `gorm:"size:500"`
	// IPHash is the one-way digest of the visitor IP.
	IPHash string `gorm:"size:64;index"`
	// Country is the locale label inferred from Accept-Language,
	// not true geolocation.
	Country string `gorm:"size:100"`
	// VisitedAt is the UTC capture timestamp, indexed for range queries.
	VisitedAt time.Time `gorm:"index;not null"`
}
