package store

import (
	"errors"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// ErrTechnologyNotFound is returned when a technology doesn't exist
var ErrTechnologyNotFound = errors.New("technology not found")

// TechnologiesStore abstracts technology storage operations
type TechnologiesStore interface {
	// List returns all technologies ordered by name.
	List() ([]model.Technology, error)

	// ListByCategories returns technologies in any of the given
	// categories. An empty list returns all technologies.
	ListByCategories(categories []string) ([]model.Technology, error)

	// GetByID retrieves a technology by primary key.
	GetByID(id uint) (*model.Technology, error)

	// Upsert inserts a technology or updates it by name. Used by seeding.
	Upsert(technology *model.Technology) error
}
