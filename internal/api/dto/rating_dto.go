package dto

import (
	"time"

	"storehub/internal/api/models"
)

// SubmitRatingRequest for creating or updating the caller's rating of a store
type SubmitRatingRequest struct {
	StoreID string `json:"storeId" binding:"required,uuid"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// RatingResponse for returning the stored rating after an upsert
type RatingResponse struct {
	ID        int64     `json:"id"`
	StoreID   string    `json:"storeId"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		StoreID:   rating.StoreID,
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}
