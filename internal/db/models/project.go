package models

import "time"

// Project is a portfolio project with an optional deep-dive case study.
// The case-study fields hold sanitized rich HTML; everything else is plain
// text.
type Project struct {
	ID               uint64 `gorm:"primaryKey"`
	Title            string `gorm:"size:200;not null;unique"`
	Description      string `gorm:"type:text;not null"`
	ShortDescription string `gorm:"size:300"`
	ImageURL         string `gorm:"size:500"`
	DemoURL          string `gorm:"size:500"`
	GithubURL        string `gorm:"size:500"`
	// Technologies is a comma-separated tech stack tag list.
	Technologies string `gorm:"size:500"`
	Category     string `gorm:"size:100"`
	Year         string `gorm:"size:20"`
	Client       string `gorm:"size:200"`
	Featured     bool
	SortOrder    int `gorm:"default:0"`

	// Case study fields (rich HTML except Metrics).
	CaseStudy    string `gorm:"type:text"`
	Challenge    string `gorm:"type:text"`
	Approach     string `gorm:"type:text"`
	Results      string `gorm:"type:text"`
	Metrics      string `gorm:"type:text"`
	HasCaseStudy bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
