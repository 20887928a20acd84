package database

import (
	"errors"

	"github.com/brightforge/agency-site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db}
}

// FindAll returns all feedback entries, newest first
func (r *FeedbackRepo) FindAll() ([]*models.Feedback, error) {
	var entries []*models.Feedback
	err := r.db.Order("created_at desc").Find(&entries).Error
	return entries, err
}

// FindApproved returns approved feedback only, newest first. This is the
// public read path.
func (r *FeedbackRepo) FindApproved() ([]*models.Feedback, error) {
	var entries []*models.Feedback
	err := r.db.Where("is_approved = ?", true).Order("created_at desc").Find(&entries).Error
	return entries, err
}

// FindByID returns a feedback entry by ID, or nil when no row exists
func (r *FeedbackRepo) FindByID(id uuid.UUID) (*models.Feedback, error) {
	var entry models.Feedback
	err := r.db.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Add inserts a new feedback entry into the database
func (r *FeedbackRepo) Add(entry *models.Feedback) error {
	return r.db.Create(entry).Error
}

// UpdateFields applies only the provided columns to an existing entry
func (r *FeedbackRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Feedback{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a feedback entry from the database by id
func (r *FeedbackRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Feedback{}, "id = ?", id).Error
}
