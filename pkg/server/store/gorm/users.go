package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// GetByUsername retrieves a user by username.
func (s *UsersStore) GetByUsername(username string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("username = ?", username).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// Create inserts a user.
func (s *UsersStore) Create(user *model.User) error {
	return s.db.Create(user).Error
}

// Update saves changes to an existing user.
func (s *UsersStore) Update(user *model.User) error {
	return s.db.Save(user).Error
}
