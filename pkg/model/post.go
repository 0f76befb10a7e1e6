package model

import (
	"encoding/json"
	"time"
)

// Post statuses. A post is a draft until it is published, either by an
// admin or by the automation pipeline once it clears the quality gate.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusScheduled = "scheduled"
)

// Post is a blog article, either written by an admin or generated by the
// automation pipeline. Content is markdown.
type Post struct {
	ID               uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title            string     `gorm:"column:title;size:200;not null" json:"title"`
	Slug             string     `gorm:"column:slug;size:200;not null;unique" json:"slug"`
	Content          string     `gorm:"column:content;type:text;not null" json:"content,omitempty"`
	Excerpt          string     `gorm:"column:excerpt;type:text" json:"excerpt"`
	FeaturedImageURL string     `gorm:"column:featured_image_url;size:500" json:"featured_image_url,omitempty"`
	CountryID        uint       `gorm:"column:country_id;not null" json:"country_id"`
	TechnologyID     uint       `gorm:"column:technology_id;not null" json:"technology_id"`
	Tags             string     `gorm:"column:tags;type:text" json:"-"`
	MetaDescription  string     `gorm:"column:meta_description;size:160" json:"meta_description,omitempty"`
	MetaKeywords     string     `gorm:"column:meta_keywords;size:200" json:"meta_keywords,omitempty"`
	Status           string     `gorm:"column:status;size:20;default:draft" json:"status"`
	QualityScore     float64    `gorm:"column:quality_score" json:"quality_score"`
	WordCount        int        `gorm:"column:word_count" json:"word_count"`
	ReadingTime      int        `gorm:"column:reading_time_minutes" json:"reading_time_minutes"`
	ViewCount        int64      `gorm:"column:view_count;default:0" json:"view_count"`
	ShareCount       int64      `gorm:"column:share_count;default:0" json:"share_count"`
	PublishedAt      *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	ScheduledFor     *time.Time `gorm:"column:scheduled_for" json:"scheduled_for,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Country     *Country     `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Technology  *Technology  `gorm:"foreignKey:TechnologyID" json:"technology,omitempty"`
	MediaAssets []MediaAsset `gorm:"foreignKey:PostID" json:"media_assets,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

// TagList decodes the JSON-encoded tags column. An empty or malformed
// column yields an empty list.
func (p Post) TagList() []string {
	if p.Tags == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(p.Tags), &tags); err != nil {
		return nil
	}
	return tags
}

// SetTags stores tags as a JSON array in the tags column.
func (p *Post) SetTags(tags []string) {
	raw, err := json.Marshal(tags)
	if err != nil {
		return
	}
	p.Tags = string(raw)
}

// IsPublished reports whether the post is visible to the public API.
func (p Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
