package models

import "time"

// Message is a contact form submission.
type Message struct {
	ID      uint64 `gorm:"primaryKey"`
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:120;not null"`
	Subject string `gorm:"size:200;not null"`
	Body    string `gorm:"type:text;not null"`
	IsRead  bool

	CreatedAt time.Time
}
