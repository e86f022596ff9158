package dto

import (
	"time"

	"storehub/internal/api/models"
)

// CreateUserRequest: payload for administrative user creation
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=20,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
	Address  string `json:"address" binding:"max=400"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER STORE_OWNER"`
}

// OwnedStoreSummary is the store fragment attached to STORE_OWNER users.
type OwnedStoreSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserResponse for returning user information. AverageRating is only present
// for store owners with a store; it is the store's aggregate, not the user's.
type UserResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Address       string             `json:"address"`
	Role          models.Role        `json:"role"`
	CreatedAt     time.Time          `json:"createdAt"`
	Store         *OwnedStoreSummary `json:"store,omitempty"`
	AverageRating *float64           `json:"averageRating,omitempty"`
}

// FromModelToUserResponse converts a User model to UserResponse DTO. The
// derived rating fields are filled in by the service layer.
func FromModelToUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	if user.Store != nil {
		resp.Store = &OwnedStoreSummary{
			ID:   user.Store.ID,
			Name: user.Store.Name,
		}
	}
	return resp
}
