package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission records one uploaded file against one folder. FolderID and
// Username are weak references: no FK constraint, deleting a folder keeps
// its submissions, and nothing stops a user from submitting twice to the
// same folder (the client treats "any submission exists" as done).
type Submission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FolderID    uuid.UUID `gorm:"type:uuid;index;not null" json:"folderId"`
	Username    string    `gorm:"size:150;index;not null" json:"username"`
	FileName    string    `gorm:"size:255" json:"fileName"`
	FilePath    string    `gorm:"type:text" json:"filePath"`
	FileType    string    `gorm:"size:100" json:"fileType"`
	Notes       string    `gorm:"type:text" json:"notes"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submittedAt"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
