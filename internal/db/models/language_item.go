package models

// LanguageItem is a spoken language entry for the about page.
type LanguageItem struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
	// Level is a proficiency label, e.g. "Native" or "C1-C2".
	Level     string `gorm:"size:50;not null"`
	SortOrder int    `gorm:"default:0"`
}
