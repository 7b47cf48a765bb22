package seed

import (
	"log"

	"marquise-backend/models"

	"gorm.io/gorm"
)

// Services inserts the sample catalog when the table is empty.
func Services(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []models.Service{
		{Name: "Moving", Description: "Professional moving services", PricePerHour: 50.0, Duration: 4, Image: "moving.jpg"},
		{Name: "Cleaning", Description: "Thorough cleaning services", PricePerHour: 30.0, Duration: 3, Image: "cleaning.jpg"},
		{Name: "Handyman", Description: "Skilled handyman services", PricePerHour: 40.0, Duration: 2, Image: "handyman.jpg"},
	}

	if err := db.Create(&services).Error; err != nil {
		return err
	}

	log.Println("Sample services added successfully!")
	return nil
}
