package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/vnkhanh/file-tracking-backend/config"
	"github.com/vnkhanh/file-tracking-backend/models"
)

// Seeds the user directory with the sample accounts used for testing.
// Wipes existing users first.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	config.InitDB()
	db := config.DB

	if err := db.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		log.Fatal("cannot clear users:", err)
	}

	sampleUsers := []models.User{
		{
			Username:   "student1",
			Password:   "pass123",
			Role:       models.RoleUser,
			Name:       "Juan Dela Cruz",
			Department: "Computer Science",
		},
		{
			Username:   "admin1",
			Password:   "admin123",
			Role:       models.RoleAdmin,
			Name:       "Admin User",
			Department: "Administration",
		},
		{
			Username:   "semiadmin1",
			Password:   "semi123",
			Role:       models.RoleSemiAdmin,
			Name:       "Semi Admin",
			Department: "Computer Science",
		},
	}

	if err := db.Create(&sampleUsers).Error; err != nil {
		log.Fatal("seeding error:", err)
	}

	log.Println("Database seeded with sample users!")
	log.Println("Student: username=student1, password=pass123")
	log.Println("Admin: username=admin1, password=admin123")
	log.Println("Semi-Admin: username=semiadmin1, password=semi123")
}
