package database

import (
	"errors"

	"github.com/brightforge/agency-site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PackageRepo struct {
	db *gorm.DB
}

func NewPackageRepo(db *gorm.DB) *PackageRepo {
	return &PackageRepo{db}
}

// FindAll returns all packages in display order
func (r *PackageRepo) FindAll() ([]*models.Package, error) {
	var packages []*models.Package
	err := r.db.Order("sort_order asc").Find(&packages).Error
	return packages, err
}

// FindActive returns active packages in display order. Public read path.
func (r *PackageRepo) FindActive() ([]*models.Package, error) {
	var packages []*models.Package
	err := r.db.Where("is_active = ?", true).Order("sort_order asc").Find(&packages).Error
	return packages, err
}

// FindByID returns a package by ID, or nil when no row exists
func (r *PackageRepo) FindByID(id uuid.UUID) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Add inserts a new package into the database
func (r *PackageRepo) Add(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

// UpdateFields applies only the provided columns to an existing package
func (r *PackageRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Package{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a package from the database by id
func (r *PackageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Package{}, "id = ?", id).Error
}
