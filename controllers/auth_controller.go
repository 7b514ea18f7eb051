package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/file-tracking-backend/models"
	"github.com/vnkhanh/file-tracking-backend/utils"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var errInvalidCredentials = errors.New("invalid credentials")

// verifyCredentials is the single place that decides whether a
// username/password pair matches a stored account.
func verifyCredentials(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.Password, password) {
		return nil, errInvalidCredentials
	}
	return &user, nil
}

// POST /login
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password required"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	user, err := verifyCredentials(db, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	// No session or token: later requests identify themselves with the
	// fields the client got back here.
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
