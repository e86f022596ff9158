package dto

import (
	"time"

	"storehub/internal/api/models"
)

// CreateStoreRequest: payload for administrative store creation. OwnerID is
// optional; when set it must reference a STORE_OWNER without a store.
type CreateStoreRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Email   string  `json:"email" binding:"required,email"`
	Address string  `json:"address" binding:"max=400"`
	OwnerID *string `json:"ownerId" binding:"omitempty,uuid"`
}

// StoreResponse for the authenticated store listing. UserRating is the
// caller's own rating for the store (null when they have not rated it) and is
// distinct from the aggregate fields.
type StoreResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
	AverageRating float64   `json:"averageRating"`
	UserRating    *int      `json:"userRating"`
	TotalRatings  int       `json:"totalRatings"`
}

// CreatedStoreResponse echoes the created store together with its owner.
type CreatedStoreResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Address   string             `json:"address"`
	CreatedAt time.Time          `json:"createdAt"`
	Owner     *StoreOwnerSummary `json:"owner,omitempty"`
}

// StoreOwnerSummary identifies the owning user on store responses.
type StoreOwnerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RaterSummary identifies the user behind a rating on the owner dashboard.
type RaterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OwnerRatingEntry is one rating row on the owner dashboard, newest first.
type OwnerRatingEntry struct {
	Rating    int          `json:"rating"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	User      RaterSummary `json:"user"`
}

// OwnerStoreSummary is the aggregate header of the owner dashboard.
type OwnerStoreSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

// OwnerDashboardResponse is the full GET /ratings/my-store payload.
type OwnerDashboardResponse struct {
	Store   OwnerStoreSummary  `json:"store"`
	Ratings []OwnerRatingEntry `json:"ratings"`
}

// FromModelToOwnerRatingEntry converts a Rating model (with User preloaded).
func FromModelToOwnerRatingEntry(rating *models.Rating) OwnerRatingEntry {
	return OwnerRatingEntry{
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
		User: RaterSummary{
			ID:    rating.User.ID,
			Name:  rating.User.Name,
			Email: rating.User.Email,
		},
	}
}
