package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NetworkCollaboration is an organization the agency collaborates with.
type NetworkCollaboration struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Highlight   string    `json:"highlight" db:"highlight" gorm:"type:text"`
	LogoURL     string    `json:"logo_url" db:"logo_url" gorm:"type:text"`
	LinkURL     string    `json:"link_url" db:"link_url" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (NetworkCollaboration) TableName() string {
	return "network_collaborations"
}

func (c *NetworkCollaboration) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// NetworkPartner is an individual partner in the agency's network.
type NetworkPartner struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Role      string    `json:"role" db:"role" gorm:"type:text"`
	LogoURL   string    `json:"logo_url" db:"logo_url" gorm:"type:text"`
	LinkURL   string    `json:"link_url" db:"link_url" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (NetworkPartner) TableName() string {
	return "network_partners"
}

func (p *NetworkPartner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
