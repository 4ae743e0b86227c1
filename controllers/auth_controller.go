package controllers

import (
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users     *services.UserService
	jwtSecret string
}

func NewAuthController(users *services.UserService, jwtSecret string) *AuthController {
	return &AuthController{users: users, jwtSecret: jwtSecret}
}

// Login identifies a user by phone number, creating the account on first
// contact, and issues a JWT.
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number required"})
		return
	}

	user, err := ctl.users.GetOrCreate(req.PhoneNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.PhoneNumber, ctl.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"phone_number": user.PhoneNumber,
			"name":         user.Name,
			"has_profile":  user.HasProfile(),
		},
	})
}
