package siteconfig

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.SiteConfigEntry{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedEntries inserts test data into the database.
func seedEntries(t *testing.T, db *gorm.DB, entries []models.SiteConfigEntry) {
	t.Helper()
	for _, entry := range entries {
		err := db.Create(&entry).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		key           string
		def           string
		seedData      []models.SiteConfigEntry
		expectedError error
		expectedValue string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			key:           "hero_title",
			def:           "fallback",
			expectedError: ErrDBNil,
			expectedValue: "fallback",
		},
		{
			name:          "empty key",
			dbParam:       db,
			key:           "",
			def:           "fallback",
			expectedError: ErrKeyEmpty,
			expectedValue: "fallback",
		},
		{
			name:          "absent key returns default without error",
			dbParam:       db,
			key:           "nonexistent",
			def:           "fallback",
			expectedValue: "fallback",
		},
		{
			name:    "successful get",
			dbParam: db,
			key:     "hero_title",
			def:     "fallback",
			seedData: []models.SiteConfigEntry{
				{Key: "hero_title", Value: "Hello"},
			},
			expectedValue: "Hello",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM site_config_entries")
			}

			if tc.seedData != nil {
				seedEntries(t, tc.dbParam, tc.seedData)
			}

			value, err := Get(tc.dbParam, tc.key, tc.def)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tc.expectedValue, value)
		})
	}
}

func TestGetGroup(t *testing.T) {
	db := setupTestDB(t)

	seedEntries(t, db, []models.SiteConfigEntry{
		{Key: "hero_title", Value: "Hello", Group: "hero"},
		{Key: "hero_subtitle", Value: "World", Group: "hero"},
		{Key: "about_bio", Value: "<p>Bio</p>", Group: "about"},
	})

	group, err := GetGroup(db, "hero")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"hero_title":    "Hello",
		"hero_subtitle": "World",
	}, group)

	empty, err := GetGroup(db, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSetUpsert(t *testing.T) {
	db := setupTestDB(t)

	// insert
	entry, err := Set(db, "hero_title", "v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", entry.Value)

	// update in place
	entry, err = Set(db, "hero_title", "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", entry.Value)

	value, err := Get(db, "hero_title", "")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)

	// exactly one row for the key
	var count int64
	require.NoError(t, db.Model(&models.SiteConfigEntry{}).Where("config_key = ?", "hero_title").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSetBatch(t *testing.T) {
	db := setupTestDB(t)

	// repeated upserts in one batch must not cause duplicate-key violations
	keys := []string{"a", "b", "c"}
	for round := 0; round < 3; round++ {
		for _, k := range keys {
			_, err := Set(db, k, "round")
			require.NoError(t, err)
		}
	}

	var count int64
	require.NoError(t, db.Model(&models.SiteConfigEntry{}).Count(&count).Error)
	assert.EqualValues(t, len(keys), count)
}

func TestSetEmptyKey(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "", "v")
	require.ErrorIs(t, err, ErrKeyEmpty)
}

func TestSetLabeled(t *testing.T) {
	db := setupTestDB(t)

	entry, err := SetLabeled(db, "hero_title", "Hello", "Hero title", "hero")
	require.NoError(t, err)
	assert.Equal(t, "Hero title", entry.Label)
	assert.Equal(t, "hero", entry.Group)

	group, err := GetGroup(db, "hero")
	require.NoError(t, err)
	assert.Equal(t, "Hello", group["hero_title"])
}
