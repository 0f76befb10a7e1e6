package store

import (
	"errors"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// ErrCountryNotFound is returned when a country doesn't exist
var ErrCountryNotFound = errors.New("country not found")

// CountriesStore abstracts country storage operations
type CountriesStore interface {
	// List returns all countries ordered by name.
	List() ([]model.Country, error)

	// ListByRegion returns the countries in one region.
	ListByRegion(region string) ([]model.Country, error)

	// GetByID retrieves a country by primary key.
	GetByID(id uint) (*model.Country, error)

	// GetByCode retrieves a country by ISO code.
	GetByCode(code string) (*model.Country, error)

	// Regions returns the distinct regions present.
	Regions() ([]string, error)

	// Upsert inserts a country or updates it by name. Used by seeding.
	Upsert(country *model.Country) error
}
