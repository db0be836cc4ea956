package models

// ImpactCard is a stat card shown on the homepage.
type ImpactCard struct {
	ID uint64 `gorm:"primaryKey"`
	// Icon is an HTML entity or emoji, e.g. "&#9733;".
	Icon  string `gorm:"size:50;not null"`
	Value string `gorm:"size:50;not null"`
	// Prefix and Suffix wrap the displayed value, e.g. "0." and "%".
	Prefix      string `gorm:"size:20"`
	Suffix      string `gorm:"size:20"`
	Description string `gorm:"size:300;not null"`
	SortOrder   int    `gorm:"default:0"`
}
