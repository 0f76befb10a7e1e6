package model

import "time"

// MediaAsset is an image, video or infographic attached to a post.
type MediaAsset struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID     uint      `gorm:"column:post_id;not null" json:"post_id"`
	AssetType  string    `gorm:"column:asset_type;size:20;not null" json:"asset_type"`
	FileURL    string    `gorm:"column:file_url;size:500;not null" json:"file_url"`
	FileName   string    `gorm:"column:file_name;size:200" json:"file_name,omitempty"`
	AltText    string    `gorm:"column:alt_text;size:200" json:"alt_text,omitempty"`
	Caption    string    `gorm:"column:caption;type:text" json:"caption,omitempty"`
	OrderIndex int       `gorm:"column:order_index;default:0" json:"order_index"`
	IsFeatured bool      `gorm:"column:is_featured;default:false" json:"is_featured"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MediaAsset) TableName() string {
	return "media_assets"
}
