package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoyaltyPoints is the per-user point balance. At most one row per user;
// the balance only ever goes up.
type LoyaltyPoints struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Points      int       `gorm:"default:0"`
	LastUpdated time.Time

	gorm.Model
}

func (l *LoyaltyPoints) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
