package repository

import (
	"storehub/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository defines the interface for rating ledger operations.
type RatingRepository interface {
	Upsert(rating *models.Rating) error
	FindByUserAndStore(userID, storeID string) (*models.Rating, error)
	FindByStore(storeID string) ([]models.Rating, error)
	Count() (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or, when the (user_id, store_id) pair already has
// a row, overwrites its value. A single INSERT ... ON CONFLICT statement, so
// concurrent submissions from the same user cannot produce duplicates.
func (r *ratingRepository) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) FindByUserAndStore(userID, storeID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindByStore(storeID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("store_id = ?", storeID).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Count(&count).Error
	return count, err
}
