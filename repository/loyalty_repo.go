package repository

import (
	"errors"
	"time"

	"marquise-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoyaltyRepository struct {
	db *gorm.DB
}

func NewLoyaltyRepository(db *gorm.DB) *LoyaltyRepository {
	return &LoyaltyRepository{db: db}
}

// AddPoints upserts the user's balance row, adding amount to whatever is
// there. The row is created lazily on first award.
func (r *LoyaltyRepository) AddPoints(userID uuid.UUID, amount int) (*models.LoyaltyPoints, error) {
	var lp models.LoyaltyPoints
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&lp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			lp = models.LoyaltyPoints{
				UserID:      userID,
				Points:      amount,
				LastUpdated: time.Now(),
			}
			return tx.Create(&lp).Error
		}
		if err != nil {
			return err
		}
		lp.Points += amount
		lp.LastUpdated = time.Now()
		return tx.Save(&lp).Error
	})
	if err != nil {
		return nil, err
	}
	return &lp, nil
}

func (r *LoyaltyRepository) ForUser(userID uuid.UUID) (*models.LoyaltyPoints, error) {
	var lp models.LoyaltyPoints
	if err := r.db.Where("user_id = ?", userID).First(&lp).Error; err != nil {
		return nil, err
	}
	return &lp, nil
}
