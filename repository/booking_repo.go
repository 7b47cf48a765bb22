package repository

import (
	"database/sql"

	"marquise-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

// CountForServiceDate returns how many bookings exist for a service on a
// date. Callers using this before an insert should know the two steps are
// not atomic; use CreateWithDailyCap when the limit has to hold.
func (r *BookingRepository) CountForServiceDate(service, date string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("service = ? AND date = ?", service, date).
		Count(&count).Error
	return count, err
}

// CreateWithDailyCap counts and inserts inside one serializable
// transaction so concurrent requests cannot overbook the day. Returns
// created=false (and no error) when the day is already full.
func (r *BookingRepository) CreateWithDailyCap(b *models.Booking, cap int) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Booking{}).
			Where("service = ? AND date = ?", b.Service, b.Date).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(cap) {
			return nil
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		created = true
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	return created, err
}

func (r *BookingRepository) ByID(id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ForUser(userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
