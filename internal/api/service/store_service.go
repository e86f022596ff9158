package service

import (
	"errors"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrStoreEmailInUse = errors.New("store with this email already exists")
	ErrInvalidOwner    = errors.New("invalid store owner")
	ErrOwnerHasStore   = errors.New("store owner already has a store")
)

type StoreService interface {
	List(viewerID, search, sortBy, sortOrder string) ([]dto.StoreResponse, error)
	Create(req dto.CreateStoreRequest) (*dto.CreatedStoreResponse, error)
	OwnerDashboard(ownerID string) (*dto.OwnerDashboardResponse, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
}

func NewStoreService(storeRepo repository.StoreRepository, userRepo repository.UserRepository) StoreService {
	return &storeService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
	}
}

// List returns stores with their aggregate and the viewer's own rating. The
// viewer's rating is looked up in the same loaded set the aggregate is
// computed from, keyed by (viewer, store).
func (s *storeService) List(viewerID, search, sortBy, sortOrder string) ([]dto.StoreResponse, error) {
	stores, err := s.storeRepo.List(search, sortBy, sortOrder)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		store := &stores[i]
		average, count := Aggregate(store.Ratings)

		var userRating *int
		for j := range store.Ratings {
			if store.Ratings[j].UserID == viewerID {
				userRating = &store.Ratings[j].Rating
				break
			}
		}

		responses = append(responses, dto.StoreResponse{
			ID:            store.ID,
			Name:          store.Name,
			Email:         store.Email,
			Address:       store.Address,
			CreatedAt:     store.CreatedAt,
			AverageRating: average,
			UserRating:    userRating,
			TotalRatings:  count,
		})
	}
	return responses, nil
}

// Create enforces the store invariants before any write: unique store email,
// and an optional owner who exists, is a STORE_OWNER and owns no other store.
func (s *storeService) Create(req dto.CreateStoreRequest) (*dto.CreatedStoreResponse, error) {
	if _, err := s.storeRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrStoreEmailInUse
	}

	var owner *models.User
	if req.OwnerID != nil {
		var err error
		owner, err = s.userRepo.FindByID(*req.OwnerID)
		if err != nil || owner.Role != models.RoleStoreOwner {
			return nil, ErrInvalidOwner
		}

		if _, err := s.storeRepo.FindByOwner(owner.ID); err == nil {
			return nil, ErrOwnerHasStore
		}
	}

	store := &models.Store{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	}

	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}

	resp := &dto.CreatedStoreResponse{
		ID:        store.ID,
		Name:      store.Name,
		Email:     store.Email,
		Address:   store.Address,
		CreatedAt: store.CreatedAt,
	}
	if owner != nil {
		resp.Owner = &dto.StoreOwnerSummary{
			ID:    owner.ID,
			Name:  owner.Name,
			Email: owner.Email,
		}
	}
	return resp, nil
}

// OwnerDashboard returns the caller's store with every rating and the
// aggregate. ErrStoreNotFound when the caller owns no store.
func (s *storeService) OwnerDashboard(ownerID string) (*dto.OwnerDashboardResponse, error) {
	store, err := s.storeRepo.FindByOwner(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	average, count := Aggregate(store.Ratings)

	entries := make([]dto.OwnerRatingEntry, 0, len(store.Ratings))
	for i := range store.Ratings {
		entries = append(entries, dto.FromModelToOwnerRatingEntry(&store.Ratings[i]))
	}

	return &dto.OwnerDashboardResponse{
		Store: dto.OwnerStoreSummary{
			ID:            store.ID,
			Name:          store.Name,
			AverageRating: average,
			TotalRatings:  count,
		},
		Ratings: entries,
	}, nil
}
