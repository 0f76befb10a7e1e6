package store

import (
	"errors"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// ErrPostNotFound is returned when a post doesn't exist
var ErrPostNotFound = errors.New("post not found")

// ErrSlugTaken is returned when creating a post with a slug that
// already exists
var ErrSlugTaken = errors.New("slug already taken")

// PostFilter narrows a post listing. Zero values mean "no filter".
type PostFilter struct {
	Status       string
	CountryID    uint
	TechnologyID uint
	Search       string
	Page         int
	PerPage      int
}

// PostPage is one page of a post listing.
type PostPage struct {
	Posts      []model.Post
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// RegionCount is the number of published posts for one region.
type RegionCount struct {
	Region string
	Count  int64
}

// PostStats are aggregate totals over a set of published posts.
type PostStats struct {
	Posts  int64 `json:"posts"`
	Views  int64 `json:"views"`
	Shares int64 `json:"shares"`
}

// PostsStore abstracts blog post storage operations
type PostsStore interface {
	// List returns a page of posts matching the filter, newest first.
	List(filter PostFilter) (*PostPage, error)

	// GetBySlug retrieves a post with its country and technology
	// preloaded. Returns ErrPostNotFound if it doesn't exist.
	GetBySlug(slug string) (*model.Post, error)

	// GetByID retrieves a post by primary key.
	GetByID(id uint) (*model.Post, error)

	// Create inserts a new post. Returns ErrSlugTaken on slug conflict.
	Create(post *model.Post) error

	// Update saves changes to an existing post.
	Update(post *model.Post) error

	// Delete removes a post and its media assets.
	Delete(id uint) error

	// SlugExists reports whether a slug is already in use.
	SlugExists(slug string) (bool, error)

	// IncrementViewCount bumps the view counter by one.
	IncrementViewCount(id uint) error

	// IncrementShareCount bumps the share counter by one.
	IncrementShareCount(id uint) error

	// CountCreatedSince counts posts created at or after the given time.
	CountCreatedSince(since time.Time) (int64, error)

	// CountForCountrySince counts posts for one country created at or
	// after the given time.
	CountForCountrySince(countryID uint, since time.Time) (int64, error)

	// CountByRegionSince counts posts per region created at or after
	// the given time. Regions with no posts are absent.
	CountByRegionSince(since time.Time) ([]RegionCount, error)

	// RecentTechnologyIDs returns the technology IDs used by a
	// country's posts created at or after the given time.
	RecentTechnologyIDs(countryID uint, since time.Time) ([]uint, error)

	// PublishedStatsSince sums posts, views and shares over posts
	// published at or after the given time.
	PublishedStatsSince(since time.Time) (*PostStats, error)
}
