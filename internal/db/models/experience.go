package models

// Experience is a work experience entry for the timeline section.
type Experience struct {
	ID       uint64 `gorm:"primaryKey"`
	Role     string `gorm:"size:200;not null"`
	Company  string `gorm:"size:200;not null"`
	Location string `gorm:"size:200"`
	// DateRange is a display string, e.g. "Jan 2023 - Present".
	DateRange   string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	// Highlights is a JSON array of bullet-point strings.
	Highlights string `gorm:"type:text"`
	SortOrder  int    `gorm:"default:0"`
}
