package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/file-tracking-backend/models"
	"github.com/vnkhanh/file-tracking-backend/utils"
)

type CreateUserInput struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// POST /create-user
// Admin accounts are not creatable through this endpoint.
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
		return
	}

	if input.Role != string(models.RoleSemiAdmin) && input.Role != string(models.RoleUser) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid role"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)

	var count int64
	db.Model(&models.User{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Username already exists"})
		return
	}

	password, err := utils.HashPasswordIfEnabled(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	user := models.User{
		Username:   input.Username,
		Password:   password,
		Name:       input.Name,
		Role:       models.UserRole(input.Role),
		Department: input.Department,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GET /all-users
func GetAllUsers(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var users []models.User
	if err := db.Where("role IN ?", []string{string(models.RoleSemiAdmin), string(models.RoleUser)}).
		Order("role, department").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// GET /departments
func GetDepartments(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	departments, err := distinctDepartments(db, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "departments": departments})
}

// GET /semiadmin-departments
// Restricted to departments that have a semi-admin, so the admin dashboard
// only drills into departments someone actually manages.
func GetSemiAdminDepartments(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	departments, err := distinctDepartments(db, models.RoleSemiAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "departments": departments})
}

func distinctDepartments(db *gorm.DB, role models.UserRole) ([]string, error) {
	query := db.Model(&models.User{}).Where("department <> ''")
	if role != "" {
		query = query.Where("role = ?", role)
	}

	departments := []string{}
	if err := query.Distinct().Order("department").
		Pluck("department", &departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}
