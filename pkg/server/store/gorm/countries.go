package gorm

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure CountriesStore implements store.CountriesStore
var _ store.CountriesStore = (*CountriesStore)(nil)

// CountriesStore implements store.CountriesStore using GORM
type CountriesStore struct {
	db *gorm.DB
}

// NewCountriesStore creates a new CountriesStore
func NewCountriesStore(db *gorm.DB) *CountriesStore {
	return &CountriesStore{db: db}
}

// List returns all countries ordered by name.
func (s *CountriesStore) List() ([]model.Country, error) {
	var countries []model.Country
	err := s.db.Order("name").Find(&countries).Error
	return countries, err
}

// ListByRegion returns the countries in one region.
func (s *CountriesStore) ListByRegion(region string) ([]model.Country, error) {
	var countries []model.Country
	err := s.db.Where("region = ?", region).Order("name").Find(&countries).Error
	return countries, err
}

// GetByID retrieves a country by primary key.
func (s *CountriesStore) GetByID(id uint) (*model.Country, error) {
	var country model.Country
	tx := s.db.First(&country, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrCountryNotFound
		}
		return nil, tx.Error
	}
	return &country, nil
}

// GetByCode retrieves a country by ISO code.
func (s *CountriesStore) GetByCode(code string) (*model.Country, error) {
	var country model.Country
	tx := s.db.Where("code = ?", code).First(&country)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrCountryNotFound
		}
		return nil, tx.Error
	}
	return &country, nil
}

// Regions returns the distinct regions present.
func (s *CountriesStore) Regions() ([]string, error) {
	var regions []string
	err := s.db.Model(&model.Country{}).
		Distinct().
		Order("region").
		Pluck("region", &regions).Error
	return regions, err
}

// Upsert inserts a country or updates it by name.
func (s *CountriesStore) Upsert(country *model.Country) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"code", "flag_url", "region", "population", "gdp_usd", "gdp_per_capita",
		}),
	}).Create(country).Error
}
