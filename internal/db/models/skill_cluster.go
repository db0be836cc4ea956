package models

// SkillCluster is a skill category card for the capabilities section of the
// about page.
type SkillCluster struct {
	ID    uint64 `gorm:"primaryKey"`
	Icon  string `gorm:"size:50;not null"`
	Title string `gorm:"size:200;not null"`
	// Tags is a comma-separated list of individual skill names.
	Tags      string `gorm:"type:text;not null"`
	SortOrder int    `gorm:"default:0"`
}
