// controllers/referral.go
package controllers

import (
	"net/http"

	"marquise-backend/models"
	"marquise-backend/repository"
	"marquise-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateReferralInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ReferralController struct {
	referrals *repository.ReferralRepository
}

func NewReferralController(referrals *repository.ReferralRepository) *ReferralController {
	return &ReferralController{referrals: referrals}
}

// CreateReferral records that the logged-in user referred an email
// address. The referral stays Pending; there is no completion flow yet.
func (ctl *ReferralController) CreateReferral(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateReferralInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ref := models.Referral{
		ReferrerID:    userID,
		ReferredEmail: input.Email,
		Status:        models.ReferralStatusPending,
	}

	if err := ctl.referrals.Create(&ref); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create referral")
		return
	}

	c.JSON(http.StatusCreated, ref)
}

func (ctl *ReferralController) MyReferrals(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	refs, err := ctl.referrals.ForReferrer(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve referrals")
		return
	}

	c.JSON(http.StatusOK, refs)
}
