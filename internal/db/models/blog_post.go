package models

import "time"

// BlogPost is a blog article. Content is sanitized rich HTML; every other
// text field is plain.
type BlogPost struct {
	ID      uint64 `gorm:"primaryKey"`
	Title   string `gorm:"size:300;not null"`
	Slug    string `gorm:"size:300;not null;unique"`
	Excerpt string `gorm:"size:500"`
	Content string `gorm:"type:text;not null"`
	// CoverImage is a URL or static path.
	CoverImage string `gorm:"size:500"`
	Category   string `gorm:"size:100"`
	// Tags is a comma-separated tag list.
	Tags string `gorm:"size:500"`
	// ReadTime is the estimated read time in minutes.
	ReadTime  int `gorm:"default:5"`
	Published bool
	Featured  bool
	SortOrder int `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
