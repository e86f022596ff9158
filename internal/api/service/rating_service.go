package service

import (
	"errors"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	Submit(userID, storeID string, value int) (*dto.RatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, storeRepo repository.StoreRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

// Submit records the caller's rating for a store. The write is a single
// atomic upsert keyed on the (user, store) uniqueness constraint, so exactly
// one ledger row per pair holds afterwards no matter how often it runs.
func (s *ratingService) Submit(userID, storeID string, value int) (*dto.RatingResponse, error) {
	// Check if store exists
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		UserID:  userID,
		StoreID: storeID,
		Rating:  value,
	}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return nil, err
	}

	// Reload the canonical row: on the conflict path the struct above does
	// not carry the existing ID and CreatedAt.
	stored, err := s.ratingRepo.FindByUserAndStore(userID, storeID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToRatingResponse(stored), nil
}
