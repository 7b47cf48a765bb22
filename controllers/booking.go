// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"marquise-backend/repository"
	"marquise-backend/services"
	"marquise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput accepts both the website form and JSON bodies.
type CreateBookingInput struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Service string `json:"service" form:"service" binding:"required"`
	Date    string `json:"date" form:"date" binding:"required"`
	Time    string `json:"time" form:"custom-time" binding:"required"`
}

type CheckAvailabilityInput struct {
	Service string `json:"service" form:"service" binding:"required"`
	Date    string `json:"date" form:"date" binding:"required"`
}

type EstimateInput struct {
	Service string `json:"service" form:"service" binding:"required"`
	Hours   int    `json:"hours" form:"hours" binding:"required,min=1"`
}

type BookingController struct {
	svc      *services.BookingService
	bookings *repository.BookingRepository
}

func NewBookingController(svc *services.BookingService, bookings *repository.BookingRepository) *BookingController {
	return &BookingController{svc: svc, bookings: bookings}
}

// CreateBooking handles POST /booking. Auth is optional: a valid token
// ties the booking to the account and earns loyalty points, no token
// books as a guest.
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var userID *uuid.UUID
	if id, err := currentUserID(c); err == nil {
		userID = &id
	}

	result, err := ctl.svc.Create(services.BookingInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Service: input.Service,
		Date:    input.Date,
		Time:    input.Time,
		UserID:  userID,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	manageToken, err := utils.GenerateBookingToken(result.Booking.ID.String(), time.Hour)
	if err != nil {
		// The booking stands; the manage link is a convenience.
		manageToken = ""
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     result.Message,
		"emailStatus": result.EmailStatus,
		"booking":     result.Booking,
		"manageToken": manageToken,
	})
}

// MyBookings returns the authenticated user's bookings, newest first.
func (ctl *BookingController) MyBookings(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	bookings, err := ctl.bookings.ForUser(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ManageBooking resolves a signed booking token (from the confirmation
// email) to the booking it was issued for.
func (ctl *BookingController) ManageBooking(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Token is required")
		return
	}

	bookingID, err := utils.VerifyBookingToken(token)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID in token")
		return
	}

	booking, err := ctl.bookings.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CheckAvailability handles POST /check_availability. The answer is
// advisory; see BookingService.CheckAvailability.
func (ctl *BookingController) CheckAvailability(c *gin.Context) {
	var input CheckAvailabilityInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	available, err := ctl.svc.CheckAvailability(input.Service, input.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// Estimate handles POST /estimate.
func (ctl *BookingController) Estimate(c *gin.Context) {
	var input EstimateInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cost, err := ctl.svc.Estimate(input.Service, input.Hours)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service": input.Service,
		"hours":   input.Hours,
		"cost":    cost,
	})
}

func respondBookingError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrUserNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNoCapacity):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to process booking request")
	}
}
