package models

import (
	"errors"
	"strings"

	"github.com/taren4ik/hw05-final/db"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint64 `gorm:"index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

// AddComment appends a comment to the post. Comments are immutable once written.
func AddComment(callerID, postID uint64, text string) (c Comment, err error) {
	if strings.TrimSpace(text) == "" {
		return Comment{}, ErrTextEmpty
	}
	if err = db.Instance.First(&Post{}, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Comment{}, ErrNotFound
		}
		return Comment{}, err
	}
	c.UserID = callerID
	c.PostID = postID
	c.Text = text
	return c, db.Instance.Create(&c).Error
}

// CommentsForPost lists comments oldest to newest.
func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at, id").
		Find(&comments).Error
	return
}
