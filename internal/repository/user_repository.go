package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "userhub/internal/errors"
	"userhub/internal/model"
)

// ListQuery carries resolved list parameters. SortColumn must already be an
// allow-listed column name; the repository never interprets raw field names.
type ListQuery struct {
	Filter     string
	SortColumn string
	Descending bool
	Offset     int
	Limit      int
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.User, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, user *model.User) error
	AssignRole(ctx context.Context, userID, roleID uint) error
	UnassignRole(ctx context.Context, userID, roleID uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context, q ListQuery) ([]model.User, error) {
	tx := r.db.WithContext(ctx).Model(&model.User{})
	if q.Filter != "" {
		pattern := "%" + q.Filter + "%"
		tx = tx.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}
	tx = tx.Order(clause.OrderByColumn{
		Column: clause.Column{Name: q.SortColumn},
		Desc:   q.Descending,
	})

	var users []model.User
	if err := tx.Offset(q.Offset).Limit(q.Limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindByID fetches a user together with its attached roles.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Roles", func(db *gorm.DB) *gorm.DB {
			return db.Order("role_id ASC")
		}).
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit("Roles").Save(user).Error
}

// Delete removes the user's role rows and the user row in one transaction so
// no orphaned role row can survive a partial failure.
func (r *userRepository) Delete(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.Role{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, user.ID).Error
	})
}

// AssignRole attaches the role row to the user by setting its owning foreign
// key. The role row is locked for the duration of the transaction, so two
// concurrent assignments of the same role serialize on the row lock.
func (r *userRepository) AssignRole(ctx context.Context, userID, roleID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.User{}, userID).Error; err != nil {
			return translateNotFound(err, apperrors.ErrUserNotFound)
		}

		var role model.Role
		if err := lockForUpdate(tx).First(&role, roleID).Error; err != nil {
			return translateNotFound(err, apperrors.ErrRoleNotFound)
		}

		if role.UserID != nil && *role.UserID == userID {
			return apperrors.ErrRoleAlreadyAssigned
		}

		return tx.Model(&role).Update("user_id", userID).Error
	})
}

// UnassignRole detaches the role row from the user by clearing its owning
// foreign key.
func (r *userRepository) UnassignRole(ctx context.Context, userID, roleID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.User{}, userID).Error; err != nil {
			return translateNotFound(err, apperrors.ErrUserNotFound)
		}

		var role model.Role
		if err := lockForUpdate(tx).First(&role, roleID).Error; err != nil {
			return translateNotFound(err, apperrors.ErrRoleNotFound)
		}

		if role.UserID == nil || *role.UserID != userID {
			return apperrors.ErrRoleNotAssigned
		}

		return tx.Model(&role).Update("user_id", nil).Error
	})
}

// lockForUpdate takes a row lock where the dialect supports it. SQLite has no
// row locks; its writers serialize on the database lock instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func translateNotFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
