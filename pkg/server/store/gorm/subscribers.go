package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure SubscribersStore implements store.SubscribersStore
var _ store.SubscribersStore = (*SubscribersStore)(nil)

// SubscribersStore implements store.SubscribersStore using GORM
type SubscribersStore struct {
	db *gorm.DB
}

// NewSubscribersStore creates a new SubscribersStore
func NewSubscribersStore(db *gorm.DB) *SubscribersStore {
	return &SubscribersStore{db: db}
}

// Subscribe creates a subscriber, or reactivates an inactive one.
func (s *SubscribersStore) Subscribe(subscriber *model.Subscriber) error {
	var existing model.Subscriber
	tx := s.db.Where("email = ?", subscriber.Email).First(&existing)
	if tx.Error == nil {
		if existing.IsActive {
			return store.ErrAlreadySubscribed
		}
		existing.IsActive = true
		existing.Source = subscriber.Source
		if err := s.db.Save(&existing).Error; err != nil {
			return err
		}
		*subscriber = existing
		return nil
	}
	if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return tx.Error
	}
	return s.db.Create(subscriber).Error
}

// GetByEmail retrieves a subscriber by email.
func (s *SubscribersStore) GetByEmail(email string) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	tx := s.db.Where("email = ?", email).First(&subscriber)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrSubscriberNotFound
		}
		return nil, tx.Error
	}
	return &subscriber, nil
}

// Unsubscribe deactivates the subscriber with the given token.
func (s *SubscribersStore) Unsubscribe(token string) error {
	tx := s.db.Model(&model.Subscriber{}).
		Where("unsubscribe_token = ?", token).
		Update("is_active", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrSubscriberNotFound
	}
	return nil
}

// ListActive returns all active subscribers.
func (s *SubscribersStore) ListActive() ([]model.Subscriber, error) {
	var subscribers []model.Subscriber
	err := s.db.Where("is_active = ?", true).Order("subscribed_at").Find(&subscribers).Error
	return subscribers, err
}

// CountActive counts active subscribers.
func (s *SubscribersStore) CountActive() (int64, error) {
	var count int64
	err := s.db.Model(&model.Subscriber{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
