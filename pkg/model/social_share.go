package model

import "time"

// Social share statuses.
const (
	ShareStatusScheduled = "scheduled"
	ShareStatusPublished = "published"
	ShareStatusFailed    = "failed"
)

// SocialShare records one share of a post to a social platform, either
// already delivered or scheduled for later delivery by the automation
// scheduler.
type SocialShare struct {
	ID              uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID          uint       `gorm:"column:post_id;not null" json:"post_id"`
	Platform        string     `gorm:"column:platform;size:50;not null" json:"platform"`
	ShareURL        string     `gorm:"column:share_url;size:500" json:"share_url,omitempty"`
	ShareText       string     `gorm:"column:share_text;type:text" json:"share_text,omitempty"`
	PlatformPostID  string     `gorm:"column:platform_post_id;size:200" json:"platform_post_id,omitempty"`
	Status          string     `gorm:"column:status;size:20;default:scheduled" json:"status"`
	ScheduledAt     *time.Time `gorm:"column:scheduled_at" json:"scheduled_at,omitempty"`
	SharedAt        *time.Time `gorm:"column:shared_at" json:"shared_at,omitempty"`
	EngagementCount int64      `gorm:"column:engagement_count;default:0" json:"engagement_count"`
	ErrorMessage    string     `gorm:"column:error_message;type:text" json:"error_message,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SocialShare) TableName() string {
	return "social_shares"
}
