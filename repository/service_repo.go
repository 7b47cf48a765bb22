package repository

import (
	"marquise-backend/models"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ByName(name string) (*models.Service, error) {
	var svc models.Service
	if err := r.db.Where("name = ?", name).First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) All() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("name").Find(&services).Error
	return services, err
}

func (r *ServiceRepository) Create(svc *models.Service) error {
	return r.db.Create(svc).Error
}

func (r *ServiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Count(&count).Error
	return count, err
}
