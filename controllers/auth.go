package controllers

import (
	"errors"
	"net/http"
	"strings"

	"marquise-backend/models"
	"marquise-backend/repository"
	"marquise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username     string `json:"username" binding:"required,min=3"`
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	ReferralCode string `json:"referralCode"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be username or email
	Password   string `json:"password" binding:"required"`
}

type AuthController struct {
	users     *repository.UserRepository
	referrals *repository.ReferralRepository
}

func NewAuthController(users *repository.UserRepository, referrals *repository.ReferralRepository) *AuthController {
	return &AuthController{users: users, referrals: referrals}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	exists, err := ctl.users.ExistsByUsernameOrEmail(input.Username, input.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		utils.RespondWithError(c, http.StatusConflict, "Username or email already registered")
		return
	}

	newUser := models.User{
		Username: input.Username,
		Email:    input.Email,
		Name:     input.Name,
		Password: input.Password, // Hashed in BeforeCreate hook
	}

	if err := ctl.users.Create(&newUser); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// A recognised referral code credits the referrer with a pending
	// referral. An unknown code is ignored rather than failing signup.
	if code := strings.TrimSpace(input.ReferralCode); code != "" {
		if referrer, err := ctl.users.ByReferralCode(strings.ToUpper(code)); err == nil {
			ref := models.Referral{
				ReferrerID:    referrer.ID,
				ReferredEmail: newUser.Email,
				Status:        models.ReferralStatusPending,
			}
			if err := ctl.referrals.Create(&ref); err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record referral")
				return
			}
		}
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.IsAdmin)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":           newUser.ID,
			"username":     newUser.Username,
			"email":        newUser.Email,
			"referralCode": newUser.ReferralCode,
		},
	})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	user, err := ctl.users.ByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.IsAdmin)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Best effort; login succeeds either way.
	_ = ctl.users.TouchLastLogin(user.ID)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"referralCode": user.ReferralCode,
			"isAdmin":      user.IsAdmin,
		},
	})
}

func (ctl *AuthController) Me(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := ctl.users.ByID(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"name":         user.Name,
			"referralCode": user.ReferralCode,
			"isAdmin":      user.IsAdmin,
		},
	})
}

// currentUserID reads the authenticated user's ID set by the auth
// middleware.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, errors.New("no user in context")
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("invalid user ID in context")
	}
	return uuid.Parse(idStr)
}
