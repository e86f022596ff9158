package handler

import (
	"context"

	"storehub/internal/api/dto"
	"storehub/internal/api/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (*dto.AuthResponse, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockUserService mocks service.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(search, role, sortBy, sortOrder string) ([]dto.UserResponse, error) {
	args := m.Called(search, role, sortBy, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Create(req dto.CreateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) GetByID(id string) (*dto.UserResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

// MockStoreService mocks service.StoreService
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) List(viewerID, search, sortBy, sortOrder string) ([]dto.StoreResponse, error) {
	args := m.Called(viewerID, search, sortBy, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StoreResponse), args.Error(1)
}

func (m *MockStoreService) Create(req dto.CreateStoreRequest) (*dto.CreatedStoreResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreatedStoreResponse), args.Error(1)
}

func (m *MockStoreService) OwnerDashboard(ownerID string) (*dto.OwnerDashboardResponse, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OwnerDashboardResponse), args.Error(1)
}

// MockRatingService mocks service.RatingService
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Submit(userID, storeID string, value int) (*dto.RatingResponse, error) {
	args := m.Called(userID, storeID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

// MockDashboardService mocks service.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) AdminSummary() (*dto.AdminSummaryResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdminSummaryResponse), args.Error(1)
}
