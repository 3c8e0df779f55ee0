package database

import (
	"github.com/thereayou/skillconnect/internal/models"
)

func (d *Database) CreatePost(post *models.Post) error {
	return d.db.Create(post).Error
}

// ListRecentPosts returns the newest posts first, at most limit of them,
// with authors preloaded for rendering.
func (d *Database) ListRecentPosts(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsByAuthor returns all of one user's posts, newest first.
func (d *Database) ListPostsByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
