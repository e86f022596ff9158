package repository

import (
	"storehub/internal/api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByIDWithStore(id string) (*models.User, error)
	List(search string, role models.Role, sortBy, sortOrder string) ([]models.User, error)
	UpdatePassword(id, passwordHash string) error
	Count() (int64, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// userSortColumns whitelists the sortable columns; anything else falls back to name.
var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	// return nil on error rather than a zero-value struct, so callers can rely
	// on the error alone to detect "not found"
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithStore loads the user together with their store and its ratings,
// so the caller can derive the store's aggregate.
func (r *userRepository) FindByIDWithStore(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Store.Ratings").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users matching the optional search substring (name, email or
// address, case-insensitive) and role filter, ordered by a whitelisted column.
func (r *userRepository) List(search string, role models.Role, sortBy, sortOrder string) ([]models.User, error) {
	query := r.db.Model(&models.User{}).Preload("Store.Ratings")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
	}

	if role != "" {
		query = query.Where("role = ?", role)
	}

	query = query.Order(orderClause(userSortColumns, sortBy, sortOrder, "name"))

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdatePassword(id, passwordHash string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// orderClause builds a safe ORDER BY from client-supplied sort parameters.
func orderClause(columns map[string]string, sortBy, sortOrder, fallback string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = fallback
	}
	direction := "ASC"
	if sortOrder == "desc" {
		direction = "DESC"
	}
	return column + " " + direction
}
