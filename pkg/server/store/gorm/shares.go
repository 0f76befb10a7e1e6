package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure SharesStore implements store.SharesStore
var _ store.SharesStore = (*SharesStore)(nil)

// SharesStore implements store.SharesStore using GORM
type SharesStore struct {
	db *gorm.DB
}

// NewSharesStore creates a new SharesStore
func NewSharesStore(db *gorm.DB) *SharesStore {
	return &SharesStore{db: db}
}

// Create inserts a share record.
func (s *SharesStore) Create(share *model.SocialShare) error {
	return s.db.Create(share).Error
}

// Update saves changes to an existing share.
func (s *SharesStore) Update(share *model.SocialShare) error {
	return s.db.Save(share).Error
}

// ListDue returns scheduled shares whose scheduled_at is at or before
// the given time.
func (s *SharesStore) ListDue(now time.Time) ([]model.SocialShare, error) {
	var shares []model.SocialShare
	err := s.db.
		Where("status = ? AND scheduled_at <= ?", model.ShareStatusScheduled, now).
		Order("scheduled_at").
		Find(&shares).Error
	return shares, err
}

// ListByPost returns all shares for one post.
func (s *SharesStore) ListByPost(postID uint) ([]model.SocialShare, error) {
	var shares []model.SocialShare
	err := s.db.Where("post_id = ?", postID).Order("created_at").Find(&shares).Error
	return shares, err
}

// ListScheduled returns all not-yet-delivered shares, soonest first.
func (s *SharesStore) ListScheduled() ([]model.SocialShare, error) {
	var shares []model.SocialShare
	err := s.db.
		Where("status = ?", model.ShareStatusScheduled).
		Order("scheduled_at").
		Find(&shares).Error
	return shares, err
}

// CountByPlatform counts published shares per platform.
func (s *SharesStore) CountByPlatform() ([]store.PlatformCount, error) {
	var counts []store.PlatformCount
	err := s.db.Model(&model.SocialShare{}).
		Select("platform, COUNT(id) AS count").
		Where("status = ?", model.ShareStatusPublished).
		Group("platform").
		Scan(&counts).Error
	return counts, err
}

// CountByStatus counts shares per status.
func (s *SharesStore) CountByStatus() ([]store.ShareStatusCount, error) {
	var counts []store.ShareStatusCount
	err := s.db.Model(&model.SocialShare{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}
