// controllers/loyalty.go
package controllers

import (
	"errors"
	"net/http"

	"marquise-backend/repository"
	"marquise-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoyaltyController struct {
	loyalty *repository.LoyaltyRepository
}

func NewLoyaltyController(loyalty *repository.LoyaltyRepository) *LoyaltyController {
	return &LoyaltyController{loyalty: loyalty}
}

// GetBalance returns the caller's loyalty balance. A user with no awards
// yet has no row; report zero rather than 404.
func (ctl *LoyaltyController) GetBalance(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	lp, err := ctl.loyalty.ForUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"points": 0})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve loyalty points")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points":      lp.Points,
		"lastUpdated": lp.LastUpdated,
	})
}
