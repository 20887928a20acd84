package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectSubmission is a project inquiry sent through the contact form. It
// is persisted before the email relay runs so a mail outage doesn't lose
// the lead.
type ProjectSubmission struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null"`
	Company     string    `json:"company" db:"company" gorm:"type:text"`
	ProjectType string    `json:"project_type" db:"project_type" gorm:"type:text"`
	Budget      string    `json:"budget" db:"budget" gorm:"type:text"`
	Timeline    string    `json:"timeline" db:"timeline" gorm:"type:text"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (ProjectSubmission) TableName() string {
	return "project_submissions"
}

func (s *ProjectSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
