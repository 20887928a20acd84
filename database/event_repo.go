package database

import (
	"errors"

	"github.com/brightforge/agency-site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db}
}

// FindAll returns all events ordered by event date, most recent first
func (r *EventRepo) FindAll() ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.Order("event_date desc").Find(&events).Error
	return events, err
}

// FindByID returns an event by ID, or nil when no row exists
func (r *EventRepo) FindByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Add inserts a new event into the database
func (r *EventRepo) Add(event *models.Event) error {
	return r.db.Create(event).Error
}

// UpdateFields applies only the provided columns to an existing event
func (r *EventRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Event{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes an event from the database by id
func (r *EventRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}
