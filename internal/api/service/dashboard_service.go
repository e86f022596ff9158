package service

import (
	"storehub/internal/api/dto"
	"storehub/internal/api/repository"
)

type DashboardService interface {
	AdminSummary() (*dto.AdminSummaryResponse, error)
}

type dashboardService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
}

func NewDashboardService(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	ratingRepo repository.RatingRepository,
) DashboardService {
	return &dashboardService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

func (s *dashboardService) AdminSummary() (*dto.AdminSummaryResponse, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}

	totalStores, err := s.storeRepo.Count()
	if err != nil {
		return nil, err
	}

	totalRatings, err := s.ratingRepo.Count()
	if err != nil {
		return nil, err
	}

	return &dto.AdminSummaryResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}
