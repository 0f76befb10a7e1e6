package gorm

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure SettingsStore implements store.SettingsStore
var _ store.SettingsStore = (*SettingsStore)(nil)

// SettingsStore implements store.SettingsStore using GORM
type SettingsStore struct {
	db *gorm.DB
}

// NewSettingsStore creates a new SettingsStore
func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get retrieves one setting by key.
func (s *SettingsStore) Get(key string) (*model.Setting, error) {
	var setting model.Setting
	tx := s.db.Where("config_key = ? AND is_active = ?", key, true).First(&setting)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrSettingNotFound
		}
		return nil, tx.Error
	}
	return &setting, nil
}

// List returns all settings.
func (s *SettingsStore) List() ([]model.Setting, error) {
	var settings []model.Setting
	err := s.db.Order("config_key").Find(&settings).Error
	return settings, err
}

// Set updates the value of an existing key or creates it.
func (s *SettingsStore) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value"}),
	}).Create(&model.Setting{Key: key, Value: value}).Error
}

// Upsert inserts a setting or updates it by key, including its
// description.
func (s *SettingsStore) Upsert(setting *model.Setting) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value", "description", "is_active"}),
	}).Create(setting).Error
}
