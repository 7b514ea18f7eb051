package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/file-tracking-backend/utils"
)

// GET /file/:filePath and GET /uploads/:filePath
// Streams a stored file. PDFs get an explicit Content-Type and inline
// disposition so mobile webviews render them instead of downloading.
func ServeFile(c *gin.Context) {
	key := filepath.Base(c.Param("filePath"))
	fullPath := filepath.Join(utils.UploadsDir, key)

	if _, err := os.Stat(fullPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "File not found"})
		return
	}

	if strings.ToLower(filepath.Ext(fullPath)) == ".pdf" {
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", `inline; filename="`+key+`"`)
	}
	c.File(fullPath)
}
