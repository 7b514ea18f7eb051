package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/file-tracking-backend/controllers"
	"github.com/vnkhanh/file-tracking-backend/middleware"
	"github.com/vnkhanh/file-tracking-backend/ws"
)

// SetupRouter registers every route. Paths are flat (no /api prefix) to
// stay compatible with the existing mobile client.
func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.Use(middleware.DBMiddleware(db))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	r.POST("/login", controllers.Login)

	// Folders, partitioned by department
	r.POST("/create-folder", controllers.CreateFolder)
	r.GET("/folders/:department", controllers.GetFolders)
	r.DELETE("/delete-folder/:department/:id", controllers.DeleteFolder)

	// Submissions
	r.POST("/submit-file", controllers.SubmitFile)
	r.GET("/user-submissions/:username", controllers.GetUserSubmissions)
	r.GET("/folder-submissions/:folderId", controllers.GetFolderSubmissions)

	// User and department directory
	r.POST("/create-user", controllers.CreateUser)
	r.GET("/all-users", controllers.GetAllUsers)
	r.GET("/departments", controllers.GetDepartments)
	r.GET("/semiadmin-departments", controllers.GetSemiAdminDepartments)

	// Stored files, both the legacy /file path and the static-style one
	r.GET("/file/:filePath", controllers.ServeFile)
	r.GET("/uploads/:filePath", controllers.ServeFile)

	r.GET("/ws/status", ws.HandleStatusWebSocket)

	return r
}
