package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a public testimonial/rating submission, optionally tied to a
// project. Entries are approved by default; the admin panel can unapprove.
type Feedback struct {
	ID         uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name       string     `json:"name" db:"name" gorm:"type:text;not null"`
	Email      string     `json:"email,omitempty" db:"email" gorm:"type:text"`
	Rating     int        `json:"rating" db:"rating" gorm:"not null"`
	Message    string     `json:"message" db:"message" gorm:"type:text;not null"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty" db:"project_id" gorm:"type:uuid;index"`
	IsApproved bool       `json:"is_approved" db:"is_approved"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Name == "" {
		f.Name = "Anonymous"
	}
	return nil
}
