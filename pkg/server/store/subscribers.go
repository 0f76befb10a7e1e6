package store

import (
	"errors"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// ErrSubscriberNotFound is returned when a subscriber doesn't exist
var ErrSubscriberNotFound = errors.New("subscriber not found")

// ErrAlreadySubscribed is returned when an email is already actively
// subscribed
var ErrAlreadySubscribed = errors.New("email already subscribed")

// SubscribersStore abstracts newsletter subscriber storage
type SubscribersStore interface {
	// Subscribe creates a subscriber, or reactivates an inactive one.
	// Returns ErrAlreadySubscribed if the email is already active.
	Subscribe(subscriber *model.Subscriber) error

	// GetByEmail retrieves a subscriber by email.
	GetByEmail(email string) (*model.Subscriber, error)

	// Unsubscribe deactivates the subscriber with the given token.
	// Returns ErrSubscriberNotFound if no subscriber has that token.
	Unsubscribe(token string) error

	// ListActive returns all active subscribers.
	ListActive() ([]model.Subscriber, error)

	// CountActive counts active subscribers.
	CountActive() (int64, error)
}
