package database

import (
	"errors"

	"github.com/brightforge/agency-site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberRepo struct {
	db *gorm.DB
}

func NewTeamMemberRepo(db *gorm.DB) *TeamMemberRepo {
	return &TeamMemberRepo{db}
}

// FindAll returns all team members, newest first
func (r *TeamMemberRepo) FindAll() ([]*models.TeamMember, error) {
	var members []*models.TeamMember
	err := r.db.Order("created_at desc").Find(&members).Error
	return members, err
}

// FindByID returns a team member by ID, or nil when no row exists
func (r *TeamMemberRepo) FindByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail returns the member owning an email, or nil. Used for the
// friendly pre-check before the unique index gets a say.
func (r *TeamMemberRepo) FindByEmail(email string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Add inserts a new team member into the database
func (r *TeamMemberRepo) Add(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// UpdateFields applies only the provided columns to an existing member
func (r *TeamMemberRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.TeamMember{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a team member from the database by id
func (r *TeamMemberRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}
