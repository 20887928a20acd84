package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type ProjectStatus string

const (
	ProjectStatusCompleted         ProjectStatus = "Completed"
	ProjectStatusInProgress        ProjectStatus = "In Progress"
	ProjectStatusActiveMaintenance ProjectStatus = "Active Maintenance"
)

// NormalizeProjectStatus coerces anything outside the known values to
// Active Maintenance. Lenient by contract: bad input is never rejected.
func NormalizeProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(s) {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusActiveMaintenance:
		return ProjectStatus(s)
	default:
		return ProjectStatusActiveMaintenance
	}
}

func (s *ProjectStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeProjectStatus(raw)
	return nil
}

// Screenshots is a deprecated column kept for older rows, which hold either
// a single string or an array. It always serves an array.
type Screenshots []string

func (s Screenshots) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s *Screenshots) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*s = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = Screenshots{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = Screenshots(many)
	return nil
}

func (s Screenshots) Value() (driver.Value, error) {
	return json.Marshal([]string(s))
}

func (s *Screenshots) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported screenshots column type")
	}
	if len(data) == 0 {
		*s = nil
		return nil
	}
	return s.UnmarshalJSON(data)
}

func (Screenshots) GormDataType() string {
	return "json"
}

func (Screenshots) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	default:
		return "JSON"
	}
}

// Project represents a portfolio project shown on the public site and
// managed through the admin panel.
type Project struct {
	ID            uuid.UUID                    `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title         string                       `json:"title" db:"title" gorm:"type:text;not null"`
	Description   string                       `json:"description" db:"description" gorm:"type:text"`
	Status        ProjectStatus                `json:"status" db:"status" gorm:"type:text;not null"`
	ImageURL      string                       `json:"image_url" db:"image_url" gorm:"type:text"`
	HeroImageURL  string                       `json:"hero_image_url" db:"hero_image_url" gorm:"type:text"`
	ThumbnailURL  string                       `json:"thumbnail_url" db:"thumbnail_url" gorm:"type:text"`
	TechStack     TechStack                    `json:"tech_stack" db:"tech_stack"`
	KeyFeatures   datatypes.JSONSlice[string]  `json:"key_features" db:"key_features"`
	CaseStudyURLs datatypes.JSONSlice[string]  `json:"case_study_urls" db:"case_study_urls"`
	ProjectPhotos datatypes.JSONSlice[string]  `json:"project_photos" db:"project_photos"`
	Screenshots   Screenshots                  `json:"screenshots,omitempty" db:"screenshots"`
	TeamMembers   datatypes.JSONSlice[string]  `json:"team_members" db:"team_members"`
	CreatedAt     time.Time                    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at" db:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Status = NormalizeProjectStatus(string(p.Status))
	return nil
}

func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Status != "" {
		p.Status = NormalizeProjectStatus(string(p.Status))
	}
	return nil
}
