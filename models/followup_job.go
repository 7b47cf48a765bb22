// models/followup_job.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FollowUpKindReminder = "reminder"
	FollowUpKindFeedback = "feedback"
)

// FollowUpJob is a one-shot scheduled notification tied to a booking.
// Jobs are persisted so they survive a restart; the worker delivers any
// job whose FireAt has passed and flips Sent exactly once.
//
// The job carries the booking's contact fields by value. If the booking
// is edited after scheduling, the job keeps the old values.
type FollowUpJob struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_booking_kind_fire,priority:1"`
	Kind      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_booking_kind_fire,priority:2"`

	Email   string `gorm:"not null"`
	Phone   string
	Name    string
	Service string
	Date    string
	Time    string

	FireAt time.Time  `gorm:"index;not null;uniqueIndex:idx_booking_kind_fire,priority:3"`
	Sent   bool       `gorm:"default:false;index"`
	SentAt *time.Time

	gorm.Model
}

func (j *FollowUpJob) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}
