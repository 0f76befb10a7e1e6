package store

import "github.com/CryptoTanAI/TechBlog/pkg/model"

// MediaStore abstracts media asset storage
type MediaStore interface {
	// ListByPost returns a post's media assets ordered by order_index.
	ListByPost(postID uint) ([]model.MediaAsset, error)

	// Create inserts a media asset.
	Create(asset *model.MediaAsset) error

	// Delete removes a media asset.
	Delete(id uint) error
}
