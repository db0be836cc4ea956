// Package siteconfig provides the key-value store for editable site copy,
// consumed by both public rendering and the admin editor.
package siteconfig

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/db/models"
)

const (
	keyQueryPattern = "config_key = ?"

	groupQueryPattern = "group_name = ?"
)

var (
	// ErrKeyEmpty is returned when attempting to set a config entry with an empty key.
	ErrKeyEmpty = errors.New("config key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a config value by key, returning def when the key is absent.
func Get(db *gorm.DB, key, def string) (string, error) {
	if db == nil {
		return def, ErrDBNil
	}
	if key == "" {
		return def, ErrKeyEmpty
	}

	var entry models.SiteConfigEntry
	result := db.Where(keyQueryPattern, key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return def, nil
		}
		return def, result.Error
	}

	return entry.Value, nil
}

// GetGroup returns all entries tagged with a group label as a key-value map,
// for batch rendering of one themed page section.
func GetGroup(db *gorm.DB, group string) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var entries []models.SiteConfigEntry
	result := db.Where(groupQueryPattern, group).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}

	return out, nil
}

// All retrieves every config entry grouped for the admin editor.
func All(db *gorm.DB) ([]models.SiteConfigEntry, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var entries []models.SiteConfigEntry
	result := db.Order("group_name, id").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Set creates or updates a config entry by key (upsert operation). The
// look-up-then-write sequence is not atomic against concurrent writers of
// the same key; only one admin editor exists at a time.
func Set(db *gorm.DB, key, value string) (*models.SiteConfigEntry, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}

	var entry models.SiteConfigEntry
	result := db.Where(keyQueryPattern, key).First(&entry)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry = models.SiteConfigEntry{
			Key:   key,
			Value: value,
		}

		if result := db.Create(&entry); result.Error != nil {
			return nil, result.Error
		}

		return &entry, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	entry.Value = value
	result = db.Save(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// SetLabeled upserts a config entry including its label and group, used by
// seeding.
func SetLabeled(db *gorm.DB, key, value, label, group string) (*models.SiteConfigEntry, error) {
	entry, err := Set(db, key, value)
	if err != nil {
		return nil, err
	}

	entry.Label = label
	entry.Group = group

	result := db.Save(entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return entry, nil
}
