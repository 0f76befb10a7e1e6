package gorm

import (
	"gorm.io/gorm"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// Ensure MediaStore implements store.MediaStore
var _ store.MediaStore = (*MediaStore)(nil)

// MediaStore implements store.MediaStore using GORM
type MediaStore struct {
	db *gorm.DB
}

// NewMediaStore creates a new MediaStore
func NewMediaStore(db *gorm.DB) *MediaStore {
	return &MediaStore{db: db}
}

// ListByPost returns a post's media assets ordered by order_index.
func (s *MediaStore) ListByPost(postID uint) ([]model.MediaAsset, error) {
	var assets []model.MediaAsset
	err := s.db.Where("post_id = ?", postID).Order("order_index").Find(&assets).Error
	return assets, err
}

// Create inserts a media asset.
func (s *MediaStore) Create(asset *model.MediaAsset) error {
	return s.db.Create(asset).Error
}

// Delete removes a media asset.
func (s *MediaStore) Delete(id uint) error {
	return s.db.Delete(&model.MediaAsset{}, id).Error
}
