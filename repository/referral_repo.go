package repository

import (
	"marquise-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) Create(ref *models.Referral) error {
	return r.db.Create(ref).Error
}

func (r *ReferralRepository) ForReferrer(referrerID uuid.UUID) ([]models.Referral, error) {
	var refs []models.Referral
	err := r.db.Where("referrer_id = ?", referrerID).
		Order("date_referred DESC").
		Find(&refs).Error
	return refs, err
}
