package store

import (
	"errors"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// ErrSettingNotFound is returned when a setting key doesn't exist
var ErrSettingNotFound = errors.New("setting not found")

// SettingsStore abstracts automation settings storage
type SettingsStore interface {
	// Get retrieves one setting by key. Returns ErrSettingNotFound if
	// the key doesn't exist or the row is inactive.
	Get(key string) (*model.Setting, error)

	// List returns all settings.
	List() ([]model.Setting, error)

	// Set updates the value of an existing key or creates it.
	Set(key, value string) error

	// Upsert inserts a setting or updates it by key, including its
	// description. Used by seeding.
	Upsert(setting *model.Setting) error
}
