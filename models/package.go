package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PackageFeature is one line item of a pricing package.
type PackageFeature struct {
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

// Package is a pricing package offered on the public site.
type Package struct {
	ID            uuid.UUID                           `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name          string                              `json:"name" db:"name" gorm:"type:text;not null"`
	Price         string                              `json:"price" db:"price" gorm:"type:text;not null"`
	Description   string                              `json:"description" db:"description" gorm:"type:text"`
	Features      datatypes.JSONSlice[PackageFeature] `json:"features" db:"features"`
	SortOrder     int                                 `json:"sort_order" db:"sort_order" gorm:"index"`
	IsActive      bool                                `json:"is_active" db:"is_active"`
	IsRecommended bool                                `json:"is_recommended" db:"is_recommended"`
	CreatedAt     time.Time                           `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time                           `json:"updated_at" db:"updated_at"`
}

func (Package) TableName() string {
	return "packages"
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
