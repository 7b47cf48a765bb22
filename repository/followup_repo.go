package repository

import (
	"time"

	"marquise-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowUpJobRepository struct {
	db *gorm.DB
}

func NewFollowUpJobRepository(db *gorm.DB) *FollowUpJobRepository {
	return &FollowUpJobRepository{db: db}
}

func (r *FollowUpJobRepository) Create(job *models.FollowUpJob) error {
	return r.db.Create(job).Error
}

// Due returns unsent jobs whose fire time has passed. Jobs scheduled in
// the past fire on the first poll after creation.
func (r *FollowUpJobRepository) Due(now time.Time) ([]models.FollowUpJob, error) {
	var jobs []models.FollowUpJob
	err := r.db.Where("sent = ? AND fire_at <= ?", false, now).
		Order("fire_at").
		Find(&jobs).Error
	return jobs, err
}

// MarkSent flips the sent flag for a job that has not been delivered yet.
// The sent predicate in the WHERE clause makes delivery idempotent when
// two workers race on the same job.
func (r *FollowUpJobRepository) MarkSent(id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.Model(&models.FollowUpJob{}).
		Where("id = ? AND sent = ?", id, false).
		Updates(map[string]interface{}{"sent": true, "sent_at": at})
	return result.RowsAffected > 0, result.Error
}

func (r *FollowUpJobRepository) ForBooking(bookingID uuid.UUID) ([]models.FollowUpJob, error) {
	var jobs []models.FollowUpJob
	err := r.db.Where("booking_id = ?", bookingID).Order("fire_at").Find(&jobs).Error
	return jobs, err
}
