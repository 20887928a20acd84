package database

import (
	"github.com/brightforge/agency-site-backend/models"
	"gorm.io/gorm"
)

type ProjectSubmissionRepo struct {
	db *gorm.DB
}

func NewProjectSubmissionRepo(db *gorm.DB) *ProjectSubmissionRepo {
	return &ProjectSubmissionRepo{db}
}

// FindAll returns all submissions, newest first
func (r *ProjectSubmissionRepo) FindAll() ([]*models.ProjectSubmission, error) {
	var submissions []*models.ProjectSubmission
	err := r.db.Order("created_at desc").Find(&submissions).Error
	return submissions, err
}

// Add inserts a new submission into the database
func (r *ProjectSubmissionRepo) Add(submission *models.ProjectSubmission) error {
	return r.db.Create(submission).Error
}
