package database

import (
	"errors"

	"github.com/brightforge/agency-site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{db}
}

// FindAll returns all services in display order
func (r *ServiceRepo) FindAll() ([]*models.Service, error) {
	var services []*models.Service
	err := r.db.Order("sort_order asc").Find(&services).Error
	return services, err
}

// FindActive returns active services in display order. Public read path.
func (r *ServiceRepo) FindActive() ([]*models.Service, error) {
	var services []*models.Service
	err := r.db.Where("is_active = ?", true).Order("sort_order asc").Find(&services).Error
	return services, err
}

// FindByID returns a service by ID, or nil when no row exists
func (r *ServiceRepo) FindByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Add inserts a new service into the database
func (r *ServiceRepo) Add(service *models.Service) error {
	return r.db.Create(service).Error
}

// UpdateFields applies only the provided columns to an existing service
func (r *ServiceRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Service{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a service from the database by id
func (r *ServiceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}
