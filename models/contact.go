package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact messages are append-only; nothing updates or deletes them.
type Contact struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Name          string    `gorm:"not null"`
	Email         string    `gorm:"not null"`
	Message       string    `gorm:"type:text;not null"`
	DateSubmitted time.Time

	gorm.Model
}

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.DateSubmitted.IsZero() {
		c.DateSubmitted = time.Now()
	}
	return
}
