package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"userhub/internal/model"
)

// RoleRepository defines role catalog persistence operations.
type RoleRepository interface {
	ListCatalog(ctx context.Context) ([]model.Role, error)
	SeedDefaults(ctx context.Context) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed role repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// ListCatalog returns the unattached catalog entries.
func (r *roleRepository) ListCatalog(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).
		Where("user_id IS NULL").
		Order("role_id ASC").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// SeedDefaults inserts the default role catalog, skipping rows that already
// exist so it is safe to run on every boot.
func (r *roleRepository) SeedDefaults(ctx context.Context) error {
	for _, role := range model.DefaultRoles {
		var existing model.Role
		err := r.db.WithContext(ctx).First(&existing, role.RoleID).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := r.db.WithContext(ctx).Create(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
