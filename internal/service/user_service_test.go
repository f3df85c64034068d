package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, q repository.ListQuery) ([]model.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) AssignRole(ctx context.Context, userID, roleID uint) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

func (m *MockUserRepository) UnassignRole(ctx context.Context, userID, roleID uint) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) ListCatalog(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRoleRepository) SeedDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestUserService_ListUsers(t *testing.T) {
	tests := []struct {
		name          string
		input         ListUsersInput
		expectedQuery *repository.ListQuery
		expectedError error
	}{
		{
			name:  "defaults applied",
			input: ListUsersInput{},
			expectedQuery: &repository.ListQuery{
				SortColumn: "id",
				Descending: false,
				Offset:     0,
				Limit:      10,
			},
		},
		{
			name: "name descending with filter",
			input: ListUsersInput{
				Page:      2,
				PageSize:  25,
				SortField: "Name",
				SortOrder: "descending",
				Filter:    "ann",
			},
			expectedQuery: &repository.ListQuery{
				Filter:     "ann",
				SortColumn: "name",
				Descending: true,
				Offset:     25,
				Limit:      25,
			},
		},
		{
			name:  "negative page and page size clamped",
			input: ListUsersInput{Page: -3, PageSize: 0},
			expectedQuery: &repository.ListQuery{
				SortColumn: "id",
				Offset:     0,
				Limit:      10,
			},
		},
		{
			name:  "oversized page size capped",
			input: ListUsersInput{Page: 1, PageSize: 5000},
			expectedQuery: &repository.ListQuery{
				SortColumn: "id",
				Offset:     0,
				Limit:      100,
			},
		},
		{
			name:          "unknown sort field rejected",
			input:         ListUsersInput{SortField: "PasswordHash"},
			expectedError: apperrors.ErrInvalidSortField,
		},
		{
			name:          "unknown sort order rejected",
			input:         ListUsersInput{SortField: "age", SortOrder: "sideways"},
			expectedError: apperrors.ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			if tt.expectedQuery != nil {
				mockRepo.On("List", mock.Anything, *tt.expectedQuery).Return([]model.User{}, nil)
				mockRepo.On("CountAll", mock.Anything).Return(int64(0), nil)
			}

			svc := NewUserService(mockRepo, new(MockRoleRepository))
			page, err := svc.ListUsers(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, page)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, page)
				assert.Equal(t, tt.expectedQuery.Limit, page.PageSize)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Name: "Ann"}, nil)

		svc := NewUserService(mockRepo, new(MockRoleRepository))
		user, err := svc.GetUser(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, "Ann", user.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found translated", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9999)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, new(MockRoleRepository))
		user, err := svc.GetUser(context.Background(), 9999)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateUserInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful creation",
			input: CreateUserInput{Name: "Ann", Email: "ann@x.com", Age: 30},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.User).ID = 5
					}).Return(nil)
			},
		},
		{
			name:          "negative age rejected before the store is touched",
			input:         CreateUserInput{Name: "Ann", Email: "ann@x.com", Age: -1},
			expectedError: apperrors.ErrNegativeAge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			if tt.setupMock != nil {
				tt.setupMock(mockRepo)
			}

			svc := NewUserService(mockRepo, new(MockRoleRepository))
			user, err := svc.CreateUser(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(5), user.ID)
				assert.Equal(t, tt.input.Name, user.Name)
				assert.NotNil(t, user.Roles)
				assert.Empty(t, user.Roles)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		input         UpdateUserInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful update",
			id:    5,
			input: UpdateUserInput{Name: "Ann B", Email: "ann@x.com", Age: 31},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Name: "Ann", Email: "ann@x.com", Age: 30}, nil)
				m.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.ID == 5 && u.Name == "Ann B" && u.Age == 31
				})).Return(nil)
			},
		},
		{
			name:  "negative age re-check blocks commit",
			id:    5,
			input: UpdateUserInput{Name: "Ann", Email: "ann@x.com", Age: -2},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Age: 30}, nil)
			},
			expectedError: apperrors.ErrNegativeAge,
		},
		{
			name:  "unknown user",
			id:    9999,
			input: UpdateUserInput{Name: "Ann", Email: "ann@x.com", Age: 30},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(9999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, new(MockRoleRepository))
			user, err := svc.UpdateUser(context.Background(), tt.id, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Name, user.Name)
				assert.Equal(t, tt.input.Age, user.Age)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("deletes loaded user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		existing := &model.User{ID: 5, Roles: []model.Role{{RoleID: 2, Name: "Admin"}}}
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, existing).Return(nil)

		svc := NewUserService(mockRepo, new(MockRoleRepository))
		assert.NoError(t, svc.DeleteUser(context.Background(), 5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9999)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, new(MockRoleRepository))
		assert.ErrorIs(t, svc.DeleteUser(context.Background(), 9999), apperrors.ErrUserNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_AssignRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("AssignRole", mock.Anything, uint(5), uint(2)).Return(apperrors.ErrRoleAlreadyAssigned)

	svc := NewUserService(mockRepo, new(MockRoleRepository))
	err := svc.AssignRole(context.Background(), 5, 2)

	assert.ErrorIs(t, err, apperrors.ErrRoleAlreadyAssigned)
	mockRepo.AssertExpectations(t)
}
