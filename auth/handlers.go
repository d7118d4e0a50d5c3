package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/models"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindInvalidInput, "invalid request payload", err))
			return
		}

		// Duplicate check before insert
		var existing models.User
		err := db.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Email already registered"))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "failed to check existing user", err))
			return
		}

		hash, err := HashPassword(req.Password)
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "failed to hash password", err))
			return
		}

		user := models.User{
			Email:     req.Email,
			Password:  hash,
			Name:      req.Name,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&user).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "failed to create user", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

// POST /api/login
//
// The admin account lives in configuration, not in the users table: matching
// ADMIN_EMAIL/ADMIN_PASSWORD short-circuits the user lookup entirely.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindInvalidInput, "invalid request payload", err))
			return
		}

		if req.Email == os.Getenv("ADMIN_EMAIL") && req.Password == os.Getenv("ADMIN_PASSWORD") {
			token, err := IssueToken(req.Email, "admin")
			if err != nil {
				httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "failed to issue token", err))
				return
			}
			c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer", "role": "admin"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			httperr.Respond(c, httperr.New(httperr.KindInvalidCredential, "Invalid credentials"))
			return
		}
		if !CheckPassword(req.Password, user.Password) {
			httperr.Respond(c, httperr.New(httperr.KindInvalidCredential, "Invalid credentials"))
			return
		}

		token, err := IssueToken(user.Email, "user")
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "failed to issue token", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer", "role": "user"})
	}
}
