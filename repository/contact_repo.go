package repository

import (
	"marquise-backend/models"

	"gorm.io/gorm"
)

// Contact and feedback rows are append-only, so these repositories only
// grow.

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(c *models.Contact) error {
	return r.db.Create(c).Error
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(f *models.Feedback) error {
	return r.db.Create(f).Error
}
