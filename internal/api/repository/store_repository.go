package repository

import (
	"storehub/internal/api/models"

	"gorm.io/gorm"
)

// StoreRepository defines the interface for store data operations.
type StoreRepository interface {
	Create(store *models.Store) error
	FindByID(id string) (*models.Store, error)
	FindByEmail(email string) (*models.Store, error)
	FindByOwner(ownerID string) (*models.Store, error)
	List(search, sortBy, sortOrder string) ([]models.Store, error)
	Count() (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

var storeSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"address":   "address",
	"createdAt": "created_at",
}

func (r *storeRepository) Create(store *models.Store) error {
	return r.db.Create(store).Error
}

func (r *storeRepository) FindByID(id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByEmail(email string) (*models.Store, error) {
	var store models.Store
	if err := r.db.Where("email = ?", email).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// FindByOwner loads the owner's store with its ratings and the rating users,
// newest rating first. Raters are needed for the owner dashboard.
func (r *storeRepository) FindByOwner(ownerID string) (*models.Store, error) {
	var store models.Store
	err := r.db.Where("owner_id = ?", ownerID).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.created_at DESC")
		}).
		Preload("Ratings.User").
		First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// List returns stores matching the optional search substring (name or address,
// case-insensitive) with their ratings preloaded for aggregation.
func (r *storeRepository) List(search, sortBy, sortOrder string) ([]models.Store, error) {
	query := r.db.Model(&models.Store{}).Preload("Ratings")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR address ILIKE ?", pattern, pattern)
	}

	query = query.Order(orderClause(storeSortColumns, sortBy, sortOrder, "name"))

	var stores []models.Store
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Store{}).Count(&count).Error
	return count, err
}
