// controllers/contact.go
package controllers

import (
	"errors"
	"net/http"

	"marquise-backend/models"
	"marquise-backend/repository"
	"marquise-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactInput struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Message string `json:"message" form:"message" binding:"required"`
}

type FeedbackInput struct {
	Service string `json:"service" form:"service" binding:"required"`
	Rating  int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" form:"comment"`
}

type ContactController struct {
	contacts *repository.ContactRepository
	feedback *repository.FeedbackRepository
	services *repository.ServiceRepository
}

func NewContactController(
	contacts *repository.ContactRepository,
	feedback *repository.FeedbackRepository,
	services *repository.ServiceRepository,
) *ContactController {
	return &ContactController{contacts: contacts, feedback: feedback, services: services}
}

func (ctl *ContactController) SubmitContact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := ctl.contacts.Create(&contact); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Your message has been sent!"})
}

func (ctl *ContactController) SubmitFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc, err := ctl.services.ByName(input.Service)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	feedback := models.Feedback{
		ServiceID: svc.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if id, err := currentUserID(c); err == nil {
		feedback.UserID = &id
	}

	if err := ctl.feedback.Create(&feedback); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for your feedback!"})
}
