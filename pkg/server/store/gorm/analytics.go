package gorm

import (
	"gorm.io/gorm"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure AnalyticsStore implements store.AnalyticsStore
var _ store.AnalyticsStore = (*AnalyticsStore)(nil)

// AnalyticsStore implements store.AnalyticsStore using GORM
type AnalyticsStore struct {
	db *gorm.DB
}

// NewAnalyticsStore creates a new AnalyticsStore
func NewAnalyticsStore(db *gorm.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// Overview returns post and engagement totals.
func (s *AnalyticsStore) Overview() (*store.Overview, error) {
	var overview store.Overview

	posts := s.db.Model(&model.Post{})
	if err := posts.Count(&overview.TotalPosts).Error; err != nil {
		return nil, err
	}

	byStatus := map[string]*int64{
		model.PostStatusPublished: &overview.PublishedPosts,
		model.PostStatusDraft:     &overview.DraftPosts,
		model.PostStatusScheduled: &overview.ScheduledPosts,
	}
	for status, dest := range byStatus {
		if err := s.db.Model(&model.Post{}).Where("status = ?", status).Count(dest).Error; err != nil {
			return nil, err
		}
	}

	type totals struct {
		Views  int64
		Shares int64
	}
	var t totals
	err := s.db.Model(&model.Post{}).
		Select("COALESCE(SUM(view_count), 0) AS views, COALESCE(SUM(share_count), 0) AS shares").
		Scan(&t).Error
	if err != nil {
		return nil, err
	}
	overview.TotalViews = t.Views
	overview.TotalShares = t.Shares

	return &overview, nil
}

// TopPosts returns the most viewed published posts.
func (s *AnalyticsStore) TopPosts(limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = 5
	}
	var posts []model.Post
	err := s.db.
		Preload("Country").
		Preload("Technology").
		Where("status = ?", model.PostStatusPublished).
		Order("view_count DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
