package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"      // system administrator
	RoleSemiAdmin UserRole = "semi-admin" // manages folders for one department
	RoleUser      UserRole = "user"       // student submitting files
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username   string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	Role       UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Name       string    `gorm:"size:150" json:"name"`
	Department string    `gorm:"size:150;index" json:"department"`
}

// IDs are generated here instead of a DB default so the same models work
// on Postgres and on the sqlite test database.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
