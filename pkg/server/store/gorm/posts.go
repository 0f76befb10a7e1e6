package gorm

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure PostsStore implements store.PostsStore
var _ store.PostsStore = (*PostsStore)(nil)

// PostsStore implements store.PostsStore using GORM
type PostsStore struct {
	db *gorm.DB
}

// NewPostsStore creates a new PostsStore
func NewPostsStore(db *gorm.DB) *PostsStore {
	return &PostsStore{db: db}
}

const defaultPerPage = 10

// List returns a page of posts matching the filter, newest first.
func (s *PostsStore) List(filter store.PostFilter) (*store.PostPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = defaultPerPage
	}

	query := s.db.Model(&model.Post{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CountryID != 0 {
		query = query.Where("country_id = ?", filter.CountryID)
	}
	if filter.TechnologyID != 0 {
		query = query.Where("technology_id = ?", filter.TechnologyID)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(excerpt) LIKE ?",
			term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []model.Post
	err := query.
		Preload("Country").
		Preload("Technology").
		Order("published_at DESC NULLS LAST, created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &store.PostPage{
		Posts:      posts,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// GetBySlug retrieves a post with its country and technology preloaded.
func (s *PostsStore) GetBySlug(slug string) (*model.Post, error) {
	var post model.Post
	tx := s.db.
		Preload("Country").
		Preload("Technology").
		Preload("MediaAssets").
		Where("slug = ?", slug).
		First(&post)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, tx.Error
	}
	return &post, nil
}

// GetByID retrieves a post by primary key.
func (s *PostsStore) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	tx := s.db.
		Preload("Country").
		Preload("Technology").
		First(&post, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, tx.Error
	}
	return &post, nil
}

// Create inserts a new post.
func (s *PostsStore) Create(post *model.Post) error {
	taken, err := s.SlugExists(post.Slug)
	if err != nil {
		return err
	}
	if taken {
		return store.ErrSlugTaken
	}
	// Country/Technology may be attached for response payloads; they are
	// reference data and never written through a post.
	return s.db.Omit(clause.Associations).Create(post).Error
}

// Update saves changes to an existing post.
func (s *PostsStore) Update(post *model.Post) error {
	return s.db.Omit(clause.Associations).Save(post).Error
}

// Delete removes a post and its media assets.
func (s *PostsStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.MediaAsset{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.SocialShare{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// SlugExists reports whether a slug is already in use.
func (s *PostsStore) SlugExists(slug string) (bool, error) {
	var count int64
	err := s.db.Model(&model.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// IncrementViewCount bumps the view counter by one.
func (s *PostsStore) IncrementViewCount(id uint) error {
	return s.db.Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// IncrementShareCount bumps the share counter by one.
func (s *PostsStore) IncrementShareCount(id uint) error {
	return s.db.Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("share_count", gorm.Expr("share_count + 1")).Error
}

// CountCreatedSince counts posts created at or after the given time.
func (s *PostsStore) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&model.Post{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

// CountForCountrySince counts posts for one country created at or after
// the given time.
func (s *PostsStore) CountForCountrySince(countryID uint, since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&model.Post{}).
		Where("country_id = ? AND created_at >= ?", countryID, since).
		Count(&count).Error
	return count, err
}

// CountByRegionSince counts posts per region created at or after the
// given time.
func (s *PostsStore) CountByRegionSince(since time.Time) ([]store.RegionCount, error) {
	var counts []store.RegionCount
	err := s.db.Model(&model.Post{}).
		Select("countries.region AS region, COUNT(posts.id) AS count").
		Joins("JOIN countries ON countries.id = posts.country_id").
		Where("posts.created_at >= ?", since).
		Group("countries.region").
		Scan(&counts).Error
	return counts, err
}

// RecentTechnologyIDs returns the technology IDs used by a country's
// posts created at or after the given time.
func (s *PostsStore) RecentTechnologyIDs(countryID uint, since time.Time) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&model.Post{}).
		Where("country_id = ? AND created_at >= ?", countryID, since).
		Distinct().
		Pluck("technology_id", &ids).Error
	return ids, err
}

// PublishedStatsSince sums posts, views and shares over posts published
// at or after the given time.
func (s *PostsStore) PublishedStatsSince(since time.Time) (*store.PostStats, error) {
	var stats store.PostStats
	err := s.db.Model(&model.Post{}).
		Select("COUNT(id) AS posts, COALESCE(SUM(view_count), 0) AS views, COALESCE(SUM(share_count), 0) AS shares").
		Where("published_at >= ?", since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
