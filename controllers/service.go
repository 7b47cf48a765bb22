// controllers/service.go
package controllers

import (
	"net/http"

	"marquise-backend/models"
	"marquise-backend/repository"
	"marquise-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"pricePerHour" binding:"required,min=0"`
	Duration     int     `json:"duration" binding:"min=0"` // in hours
	Image        string  `json:"image"`
}

type ServiceController struct {
	services *repository.ServiceRepository
}

func NewServiceController(services *repository.ServiceRepository) *ServiceController {
	return &ServiceController{services: services}
}

// GetServices lists the catalog
func (ctl *ServiceController) GetServices(c *gin.Context) {
	services, err := ctl.services.All()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService adds a catalog entry (admin only, enforced in routing)
func (ctl *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:         input.Name,
		Description:  input.Description,
		PricePerHour: input.PricePerHour,
		Duration:     input.Duration,
		Image:        input.Image,
	}

	if err := ctl.services.Create(&service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}
