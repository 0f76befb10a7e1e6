package gorm

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure TechnologiesStore implements store.TechnologiesStore
var _ store.TechnologiesStore = (*TechnologiesStore)(nil)

// TechnologiesStore implements store.TechnologiesStore using GORM
type TechnologiesStore struct {
	db *gorm.DB
}

// NewTechnologiesStore creates a new TechnologiesStore
func NewTechnologiesStore(db *gorm.DB) *TechnologiesStore {
	return &TechnologiesStore{db: db}
}

// List returns all technologies ordered by name.
func (s *TechnologiesStore) List() ([]model.Technology, error) {
	var technologies []model.Technology
	err := s.db.Order("name").Find(&technologies).Error
	return technologies, err
}

// ListByCategories returns technologies in any of the given categories.
func (s *TechnologiesStore) ListByCategories(categories []string) ([]model.Technology, error) {
	query := s.db.Order("name")
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}
	var technologies []model.Technology
	err := query.Find(&technologies).Error
	return technologies, err
}

// GetByID retrieves a technology by primary key.
func (s *TechnologiesStore) GetByID(id uint) (*model.Technology, error) {
	var technology model.Technology
	tx := s.db.First(&technology, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrTechnologyNotFound
		}
		return nil, tx.Error
	}
	return &technology, nil
}

// Upsert inserts a technology or updates it by name.
func (s *TechnologiesStore) Upsert(technology *model.Technology) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "description"}),
	}).Create(technology).Error
}
