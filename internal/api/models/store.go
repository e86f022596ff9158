package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	Address string `json:"address"`
	// Nullable so unowned stores are representable; the unique index enforces
	// one store per owner (Postgres permits multiple NULLs).
	OwnerID   *string   `gorm:"type:uuid;uniqueIndex" json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner   *User    `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate hook to set UUID before creating a Store
func (store *Store) BeforeCreate(tx *gorm.DB) (err error) {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	return
}

func (Store) TableName() string {
	return "stores"
}
