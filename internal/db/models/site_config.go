// Package models contains database model definitions.
package models

// SiteConfigEntry is one key-value row of editable site copy (hero text,
// about paragraphs, social links). Use the siteconfig controller instead of
// querying directly; it handles defaults and upsert logic.
type SiteConfigEntry struct {
	ID uint64 `gorm:"primaryKey"`
	// Key is the unique config key, e.g. "hero_title". The column avoids
	// the bare name "key", reserved in MySQL.
	Key string `gorm:"unique;size:100;not null;column:config_key"`
	// Value is always a string, never null, defaults to empty.
	Value string `gorm:"type:text;not null;default:''"`
	// Label is the human-readable name shown in the admin editor.
	Label string `gorm:"size:200"`
	// Group tags entries rendered together on one page section.
	Group string `gorm:"size:50;column:group_name"`
}
