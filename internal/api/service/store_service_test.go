package service

import (
	"testing"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestCreateStore_DuplicateEmail(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByEmail", "taken@example.com").
		Return(&models.Store{ID: "store-1", Email: "taken@example.com"}, nil)

	svc := NewStoreService(storeRepo, userRepo)

	_, err := svc.Create(dto.CreateStoreRequest{
		Name:  "Another Store",
		Email: "taken@example.com",
	})

	assert.ErrorIs(t, err, ErrStoreEmailInUse)
	storeRepo.AssertNotCalled(t, "Create")
}

func TestCreateStore_OwnerMissing(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewStoreService(storeRepo, userRepo)

	_, err := svc.Create(dto.CreateStoreRequest{
		Name:    "Fresh Mart",
		Email:   "new@example.com",
		OwnerID: strPtr("ghost"),
	})

	assert.ErrorIs(t, err, ErrInvalidOwner)
	storeRepo.AssertNotCalled(t, "Create")
}

func TestCreateStore_OwnerWrongRole(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByID", "user-1").
		Return(&models.User{ID: "user-1", Role: models.RoleUser}, nil)

	svc := NewStoreService(storeRepo, userRepo)

	_, err := svc.Create(dto.CreateStoreRequest{
		Name:    "Fresh Mart",
		Email:   "new@example.com",
		OwnerID: strPtr("user-1"),
	})

	assert.ErrorIs(t, err, ErrInvalidOwner)
	storeRepo.AssertNotCalled(t, "Create")
}

func TestCreateStore_OwnerAlreadyBound(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByID", "owner-1").
		Return(&models.User{ID: "owner-1", Role: models.RoleStoreOwner}, nil)
	storeRepo.On("FindByOwner", "owner-1").
		Return(&models.Store{ID: "store-1", OwnerID: strPtr("owner-1")}, nil)

	svc := NewStoreService(storeRepo, userRepo)

	_, err := svc.Create(dto.CreateStoreRequest{
		Name:    "Second Store",
		Email:   "new@example.com",
		OwnerID: strPtr("owner-1"),
	})

	// rejected, and no row is created
	assert.ErrorIs(t, err, ErrOwnerHasStore)
	storeRepo.AssertNotCalled(t, "Create")
}

func TestCreateStore_Success(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByID", "owner-1").
		Return(&models.User{ID: "owner-1", Name: "Owner", Email: "owner@example.com", Role: models.RoleStoreOwner}, nil)
	storeRepo.On("FindByOwner", "owner-1").Return(nil, gorm.ErrRecordNotFound)
	storeRepo.On("Create", mock.AnythingOfType("*models.Store")).Return(nil)

	svc := NewStoreService(storeRepo, userRepo)

	resp, err := svc.Create(dto.CreateStoreRequest{
		Name:    "Fresh Mart",
		Email:   "new@example.com",
		Address: "12 Market Street",
		OwnerID: strPtr("owner-1"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Fresh Mart", resp.Name)
	require.NotNil(t, resp.Owner)
	assert.Equal(t, "owner-1", resp.Owner.ID)
	storeRepo.AssertExpectations(t)
}

func TestListStores_ViewerRatingSurfaced(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("List", "", "name", "asc").Return([]models.Store{
		{
			ID:   "store-1",
			Name: "Corner Grocery",
			Ratings: []models.Rating{
				{UserID: "viewer", StoreID: "store-1", Rating: 4},
				{UserID: "other", StoreID: "store-1", Rating: 5},
			},
		},
		{
			ID:   "store-2",
			Name: "Hardware Depot",
			Ratings: []models.Rating{
				{UserID: "other", StoreID: "store-2", Rating: 2},
			},
		},
	}, nil)

	svc := NewStoreService(storeRepo, userRepo)

	stores, err := svc.List("viewer", "", "name", "asc")
	require.NoError(t, err)
	require.Len(t, stores, 2)

	assert.Equal(t, 4.5, stores[0].AverageRating)
	assert.Equal(t, 2, stores[0].TotalRatings)
	require.NotNil(t, stores[0].UserRating)
	assert.Equal(t, 4, *stores[0].UserRating)

	assert.Equal(t, 2.0, stores[1].AverageRating)
	assert.Nil(t, stores[1].UserRating)
}

func TestOwnerDashboard_NoStore(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByOwner", "owner-1").Return(nil, gorm.ErrRecordNotFound)

	svc := NewStoreService(storeRepo, userRepo)

	_, err := svc.OwnerDashboard("owner-1")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestOwnerDashboard_WithRatings(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByOwner", "owner-1").Return(&models.Store{
		ID:      "store-1",
		Name:    "Corner Grocery",
		OwnerID: strPtr("owner-1"),
		Ratings: []models.Rating{
			{Rating: 5, User: models.User{ID: "u1", Name: "Rater One", Email: "one@example.com"}},
			{Rating: 4, User: models.User{ID: "u2", Name: "Rater Two", Email: "two@example.com"}},
		},
	}, nil)

	svc := NewStoreService(storeRepo, userRepo)

	dashboard, err := svc.OwnerDashboard("owner-1")
	require.NoError(t, err)
	assert.Equal(t, 4.5, dashboard.Store.AverageRating)
	assert.Equal(t, 2, dashboard.Store.TotalRatings)
	require.Len(t, dashboard.Ratings, 2)
	assert.Equal(t, "Rater One", dashboard.Ratings[0].User.Name)
}
