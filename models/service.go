package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"not null;index"`
	Description  string    `gorm:"type:varchar(500)"`
	PricePerHour float64   `gorm:"type:decimal(10,2);not null"`
	Duration     int       // in hours
	Image        string

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
