package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/file-tracking-backend/models"
	"github.com/vnkhanh/file-tracking-backend/utils"
	"github.com/vnkhanh/file-tracking-backend/ws"
)

type CreateFolderInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	CreatedBy   string    `json:"createdBy" binding:"required"`
	Department  string    `json:"department" binding:"required"`
}

// POST /create-folder
func CreateFolder(c *gin.Context) {
	var input CreateFolderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	folder := models.Folder{
		Name:        input.Name,
		Description: input.Description,
		Deadline:    input.Deadline,
		CreatedBy:   input.CreatedBy,
		Department:  utils.NormalizeDepartment(input.Department),
	}

	if err := db.Create(&folder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	ws.BroadcastFolderListChanged(folder.Department)
	c.JSON(http.StatusOK, gin.H{"success": true, "folder": folder})
}

// GET /folders/:department
func GetFolders(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	department := utils.NormalizeDepartment(c.Param("department"))

	folders := []models.Folder{}
	if err := db.Where("department = ?", department).
		Order("created_at DESC").
		Find(&folders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "folders": folders})
}

// DELETE /delete-folder/:department/:id
// Deleting an id that does not exist is not an error.
func DeleteFolder(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid folder id"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	department := utils.NormalizeDepartment(c.Param("department"))

	if err := db.Where("department = ?", department).
		Delete(&models.Folder{}, "id = ?", folderID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	ws.BroadcastFolderListChanged(department)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
