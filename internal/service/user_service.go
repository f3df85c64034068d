package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// sortColumns is the allow-list from external sort field names to columns.
// Unknown names are rejected instead of being resolved dynamically.
var sortColumns = map[string]string{
	"id":    "id",
	"name":  "name",
	"email": "email",
	"age":   "age",
}

// ListUsersInput carries raw list parameters as received from the transport.
type ListUsersInput struct {
	Page      int
	PageSize  int
	SortField string
	SortOrder string
	Filter    string
}

// CreateUserInput carries the mutable user fields for creation.
type CreateUserInput struct {
	Name  string
	Email string
	Age   int
}

// UpdateUserInput carries the mutable user fields for update.
type UpdateUserInput struct {
	Name  string
	Email string
	Age   int
}

// UserPage is one page of the user listing.
type UserPage struct {
	Users    []model.User `json:"users"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

// UserService exposes the user management operations.
type UserService interface {
	ListUsers(ctx context.Context, in ListUsersInput) (*UserPage, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
	AssignRole(ctx context.Context, userID, roleID uint) error
	UnassignRole(ctx context.Context, userID, roleID uint) error
	ListCatalogRoles(ctx context.Context) ([]model.Role, error)
}

type userService struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

// NewUserService builds a UserService over the user and role repositories.
func NewUserService(users repository.UserRepository, roles repository.RoleRepository) UserService {
	return &userService{users: users, roles: roles}
}

func (s *userService) ListUsers(ctx context.Context, in ListUsersInput) (*UserPage, error) {
	column, err := resolveSortColumn(in.SortField)
	if err != nil {
		return nil, err
	}
	descending, err := resolveSortOrder(in.SortOrder)
	if err != nil {
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	users, err := s.users.List(ctx, repository.ListQuery{
		Filter:     in.Filter,
		SortColumn: column,
		Descending: descending,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	})
	if err != nil {
		return nil, err
	}

	total, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users:    users,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if in.Age < 0 {
		return nil, apperrors.ErrNegativeAge
	}

	user := &model.User{
		Name:  in.Name,
		Email: in.Email,
		Age:   in.Age,
		Roles: []model.Role{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Age = in.Age

	// Re-check before commit, independent of request-shape validation.
	if user.Age < 0 {
		return nil, apperrors.ErrNegativeAge
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, user)
}

func (s *userService) AssignRole(ctx context.Context, userID, roleID uint) error {
	return s.users.AssignRole(ctx, userID, roleID)
}

func (s *userService) UnassignRole(ctx context.Context, userID, roleID uint) error {
	return s.users.UnassignRole(ctx, userID, roleID)
}

func (s *userService) ListCatalogRoles(ctx context.Context) ([]model.Role, error) {
	return s.roles.ListCatalog(ctx)
}

func resolveSortColumn(field string) (string, error) {
	if field == "" {
		return "id", nil
	}
	column, ok := sortColumns[strings.ToLower(field)]
	if !ok {
		return "", apperrors.ErrInvalidSortField
	}
	return column, nil
}

func resolveSortOrder(order string) (bool, error) {
	switch strings.ToLower(order) {
	case "", "ascending", "asc":
		return false, nil
	case "descending", "desc":
		return true, nil
	default:
		return false, apperrors.ErrInvalidSortOrder
	}
}
