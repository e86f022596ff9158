package service

import (
	"errors"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"
	"storehub/internal/auth"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	List(search, role, sortBy, sortOrder string) ([]dto.UserResponse, error)
	Create(req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(id string) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// List returns users for the admin screen. Store owners carry the computed
// average rating of their store.
func (s *userService) List(search, role, sortBy, sortOrder string) ([]dto.UserResponse, error) {
	users, err := s.userRepo.List(search, models.Role(role), sortBy, sortOrder)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, s.decorate(&users[i]))
	}
	return responses, nil
}

// Create persists an administratively created account. All field validation
// has already happened at the binding layer; only the uniqueness invariant is
// checked here, before any write.
func (s *userService) Create(req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Address:  req.Address,
		Role:     models.Role(req.Role),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := dto.FromModelToUserResponse(user)
	return &resp, nil
}

func (s *userService) GetByID(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByIDWithStore(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	resp := s.decorate(user)
	return &resp, nil
}

// decorate maps the model and fills in the derived average for store owners.
func (s *userService) decorate(user *models.User) dto.UserResponse {
	resp := dto.FromModelToUserResponse(user)
	if user.Role == models.RoleStoreOwner && user.Store != nil {
		average, _ := Aggregate(user.Store.Ratings)
		resp.AverageRating = &average
	}
	return resp
}
