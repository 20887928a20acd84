package database

import (
	"errors"

	"github.com/brightforge/agency-site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NetworkCollaborationRepo struct {
	db *gorm.DB
}

func NewNetworkCollaborationRepo(db *gorm.DB) *NetworkCollaborationRepo {
	return &NetworkCollaborationRepo{db}
}

func (r *NetworkCollaborationRepo) FindAll() ([]*models.NetworkCollaboration, error) {
	var collaborations []*models.NetworkCollaboration
	err := r.db.Order("created_at desc").Find(&collaborations).Error
	return collaborations, err
}

func (r *NetworkCollaborationRepo) FindByID(id uuid.UUID) (*models.NetworkCollaboration, error) {
	var collaboration models.NetworkCollaboration
	err := r.db.First(&collaboration, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &collaboration, nil
}

func (r *NetworkCollaborationRepo) Add(collaboration *models.NetworkCollaboration) error {
	return r.db.Create(collaboration).Error
}

func (r *NetworkCollaborationRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.NetworkCollaboration{}).Where("id = ?", id).Updates(fields).Error
}

func (r *NetworkCollaborationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.NetworkCollaboration{}, "id = ?", id).Error
}

type NetworkPartnerRepo struct {
	db *gorm.DB
}

func NewNetworkPartnerRepo(db *gorm.DB) *NetworkPartnerRepo {
	return &NetworkPartnerRepo{db}
}

func (r *NetworkPartnerRepo) FindAll() ([]*models.NetworkPartner, error) {
	var partners []*models.NetworkPartner
	err := r.db.Order("created_at desc").Find(&partners).Error
	return partners, err
}

func (r *NetworkPartnerRepo) FindByID(id uuid.UUID) (*models.NetworkPartner, error) {
	var partner models.NetworkPartner
	err := r.db.First(&partner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *NetworkPartnerRepo) Add(partner *models.NetworkPartner) error {
	return r.db.Create(partner).Error
}

func (r *NetworkPartnerRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.NetworkPartner{}).Where("id = ?", id).Updates(fields).Error
}

func (r *NetworkPartnerRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.NetworkPartner{}, "id = ?", id).Error
}
