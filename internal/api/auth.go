package api

import (
	"errors"
	"net/http"

	"guess_the_word/internal/repository"
	"guess_the_word/internal/service"
	"guess_the_word/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RegisterRequest carries new account credentials
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse returns the session token
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegisterHandler creates a new account. The very first account becomes the
// admin; everyone after plays.
func RegisterHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := auth.Register(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
			"role":     user.Role,
		}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "role": user.Role})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(auth *service.AuthService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := auth.Login(req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token, Role: user.Role})
	}
}
