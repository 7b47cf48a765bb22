package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses. Nothing in the current flows moves a booking past
// Pending; the later states exist for an admin confirmation surface that
// has not been built yet.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"
)

type Booking struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name  string    `gorm:"not null"`
	Email string    `gorm:"not null;index"`
	Phone string

	// Denormalized service name, deliberately not a foreign key: the
	// booking keeps whatever name was submitted even if the catalog
	// entry is renamed later.
	Service string `gorm:"not null;index:idx_service_date,priority:1"`
	Date    string `gorm:"not null;index:idx_service_date,priority:2"`
	Time    string `gorm:"not null"`

	Status string `gorm:"type:varchar(20);default:'Pending'"`

	// Nullable: guests may book without an account.
	UserID *uuid.UUID `gorm:"type:uuid;index"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return
}
