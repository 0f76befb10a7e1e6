package store

import "github.com/CryptoTanAI/TechBlog/pkg/model"

// Overview is the aggregate view behind the admin analytics dashboard.
type Overview struct {
	TotalPosts     int64 `json:"total_posts"`
	PublishedPosts int64 `json:"published_posts"`
	DraftPosts     int64 `json:"draft_posts"`
	ScheduledPosts int64 `json:"scheduled_posts"`
	TotalViews     int64 `json:"total_views"`
	TotalShares    int64 `json:"total_shares"`
}

// AnalyticsStore abstracts aggregate reporting queries
type AnalyticsStore interface {
	// Overview returns post and engagement totals.
	Overview() (*Overview, error)

	// TopPosts returns the most viewed published posts.
	TopPosts(limit int) ([]model.Post, error)
}
