package model

import "time"

// Automation setting keys. Settings live in the database so the admin
// panel can change them without a restart; the scheduler re-reads them
// on every tick.
const (
	SettingDailyPostingEnabled = "daily_posting_enabled"
	SettingPostingTime         = "posting_time"
	SettingRotationStrategy    = "country_rotation_strategy"
	SettingAutoShare           = "social_media_auto_share"
	SettingQualityThreshold    = "content_quality_threshold"
	SettingMaxPostsPerCountry  = "max_posts_per_country_per_month"
	SettingTargetPostLength    = "target_post_length"
	SettingResearchDataSources = "research_data_sources"
)

// Setting is a key/value automation configuration row.
type Setting struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Key         string    `gorm:"column:config_key;size:100;not null;unique" json:"config_key"`
	Value       string    `gorm:"column:config_value;type:text" json:"config_value"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
