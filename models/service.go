package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is one of the agency's service offerings.
type Service struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text"`
	Features    datatypes.JSONSlice[string] `json:"features" db:"features"`
	SortOrder   int                         `json:"sort_order" db:"sort_order" gorm:"index"`
	IsActive    bool                        `json:"is_active" db:"is_active"`
	CreatedAt   time.Time                   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
