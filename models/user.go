package models

import (
	"marquise-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Username string    `gorm:"uniqueIndex;not null"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`

	ReferralCode string `gorm:"uniqueIndex"`
	IsAdmin      bool   `gorm:"default:false"`

	Bookings  []Booking  `gorm:"foreignKey:UserID"`
	Referrals []Referral `gorm:"foreignKey:ReferrerID"`

	LastLogin *time.Time

	gorm.Model
}

// Hash the password and assign IDs before the row exists
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	if u.ReferralCode == "" {
		code, err := utils.GenerateReferralCode()
		if err != nil {
			return err
		}
		u.ReferralCode = code
	}
	return
}
