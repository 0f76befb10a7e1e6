package store

import (
	"errors"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// ErrUserNotFound is returned when a user doesn't exist
var ErrUserNotFound = errors.New("user not found")

// UsersStore abstracts admin user storage
type UsersStore interface {
	// GetByUsername retrieves a user by username.
	GetByUsername(username string) (*model.User, error)

	// Create inserts a user.
	Create(user *model.User) error

	// Update saves changes to an existing user.
	Update(user *model.User) error
}
