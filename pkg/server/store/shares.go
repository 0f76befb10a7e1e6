package store

import (
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// PlatformCount is the number of shares for one platform.
type PlatformCount struct {
	Platform string
	Count    int64
}

// ShareStatusCount is the number of shares in one status.
type ShareStatusCount struct {
	Status string
	Count  int64
}

// SharesStore abstracts social share storage
type SharesStore interface {
	// Create inserts a share record.
	Create(share *model.SocialShare) error

	// Update saves changes to an existing share.
	Update(share *model.SocialShare) error

	// ListDue returns scheduled shares whose scheduled_at is at or
	// before the given time.
	ListDue(now time.Time) ([]model.SocialShare, error)

	// ListByPost returns all shares for one post.
	ListByPost(postID uint) ([]model.SocialShare, error)

	// ListScheduled returns all not-yet-delivered shares, soonest first.
	ListScheduled() ([]model.SocialShare, error)

	// CountByPlatform counts published shares per platform.
	CountByPlatform() ([]PlatformCount, error)

	// CountByStatus counts shares per status.
	CountByStatus() ([]ShareStatusCount, error)
}
