package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder is a deadline-bound submission target. Folders are partitioned by
// department: the Department column always holds the normalized form
// (utils.NormalizeDepartment) and every read path filters on it, so one
// table replaces the per-department collections of the legacy server.
type Folder struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Deadline    time.Time `json:"deadline"`
	CreatedBy   string    `gorm:"size:150" json:"createdBy"`
	Department  string    `gorm:"size:150;index;not null" json:"department"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
