package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/file-tracking-backend/models"
	"github.com/vnkhanh/file-tracking-backend/utils"
	"github.com/vnkhanh/file-tracking-backend/ws"
)

// POST /submit-file (multipart: file + folderId, username, notes)
func SubmitFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file uploaded"})
		return
	}
	if file.Size > 20*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File exceeds 20MB"})
		return
	}

	folderID, err := uuid.Parse(c.PostForm("folderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid folder id"})
		return
	}
	username := c.PostForm("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username required"})
		return
	}

	key := utils.StorageKey(file.Filename)

	// Local disk is the default sink; Supabase takes over when configured.
	// The stored path is the storage key for local files and a full public
	// URL for remote ones.
	var storedPath string
	if utils.RemoteStorageEnabled() {
		storedPath, err = utils.UploadFileToSupabase(file, key)
	} else {
		storedPath, err = utils.SaveUploadedFile(file, key)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	submission := models.Submission{
		FolderID: folderID,
		Username: username,
		FileName: file.Filename,
		FilePath: storedPath,
		FileType: file.Header.Get("Content-Type"),
		Notes:    c.PostForm("notes"),
	}
	if err := db.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	ws.BroadcastSubmissionListChanged(folderID.String())
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "File submitted successfully!",
		"submission": submission,
	})
}

// GET /user-submissions/:username
func GetUserSubmissions(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	submissions := []models.Submission{}
	if err := db.Where("username = ?", c.Param("username")).
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submissions": submissions})
}

type submissionWithURL struct {
	models.Submission
	FileURL string `json:"fileUrl"`
}

// GET /folder-submissions/:folderId
// The fileUrl is never persisted: it is joined with the request's own host
// on every read, so it stays correct whatever address the server is
// reachable on.
func GetFolderSubmissions(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid folder id"})
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	submissions := []models.Submission{}
	if err := db.Where("folder_id = ?", folderID).
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	baseURL := "http://" + c.Request.Host
	result := make([]submissionWithURL, 0, len(submissions))
	for _, s := range submissions {
		url := ""
		switch {
		case strings.HasPrefix(s.FilePath, "http"):
			// Remote sink already stores a full public URL.
			url = s.FilePath
		case s.FilePath != "":
			url = baseURL + "/uploads/" + s.FilePath
		}
		result = append(result, submissionWithURL{Submission: s, FileURL: url})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submissions": result})
}
