package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReferralStatusPending   = "Pending"
	ReferralStatusCompleted = "Completed"
)

type Referral struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ReferrerID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ReferredEmail string    `gorm:"not null"`
	DateReferred  time.Time
	Status        string `gorm:"type:varchar(20);default:'Pending'"`

	gorm.Model
}

func (r *Referral) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.DateReferred.IsZero() {
		r.DateReferred = time.Now()
	}
	return
}
