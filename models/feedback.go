package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID        *uuid.UUID `gorm:"type:uuid;index"`
	ServiceID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	Rating        int        `gorm:"not null"`
	Comment       string     `gorm:"type:text"`
	DateSubmitted time.Time

	gorm.Model
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.DateSubmitted.IsZero() {
		f.DateSubmitted = time.Now()
	}
	return
}
