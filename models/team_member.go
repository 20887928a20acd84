package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberStatus string

const (
	MemberStatusActive MemberStatus = "Active"
	MemberStatusAlumni MemberStatus = "Alumni"
	MemberStatusMentor MemberStatus = "Mentor"
)

func NormalizeMemberStatus(s string) MemberStatus {
	switch MemberStatus(s) {
	case MemberStatusActive, MemberStatusAlumni, MemberStatusMentor:
		return MemberStatus(s)
	default:
		return MemberStatusActive
	}
}

func (s *MemberStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeMemberStatus(raw)
	return nil
}

// TeamMember represents a member of the agency team. Email is unique when
// present; nil emails don't collide.
type TeamMember struct {
	ID        uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string       `json:"name" db:"name" gorm:"type:text;not null"`
	Role      string       `json:"role" db:"role" gorm:"type:text;not null"`
	AvatarURL string       `json:"avatar_url" db:"avatar_url" gorm:"type:text"`
	Bio       string       `json:"bio" db:"bio" gorm:"type:text"`
	Email     *string      `json:"email,omitempty" db:"email" gorm:"type:text;uniqueIndex:idx_team_members_email"`
	LinkedIn  string       `json:"linkedin" db:"linkedin" gorm:"type:text"`
	Status    MemberStatus `json:"status" db:"status" gorm:"type:text;not null"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Status = NormalizeMemberStatus(string(m.Status))
	if m.Email != nil && *m.Email == "" {
		m.Email = nil
	}
	return nil
}
