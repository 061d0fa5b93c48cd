package models

import (
	"errors"
	"strings"

	"github.com/taren4ik/hw05-final/db"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:posts_pub_order"`
	UpdatedAt int64
	UserID    uint64 `gorm:"index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text;not null"`
	Image     string `gorm:"type:varchar(300)"` // media path of the attached image, if any
}

// CreatePost persists a new post. Blank text never reaches the store.
func CreatePost(authorID uint64, text string, groupID *uint64, imagePath string) (p Post, err error) {
	if strings.TrimSpace(text) == "" {
		return Post{}, ErrTextEmpty
	}
	if groupID != nil {
		if err = db.Instance.First(&Group{}, *groupID).Error; err != nil {
			return Post{}, ErrNotFound
		}
	}
	p.UserID = authorID
	p.Text = text
	p.GroupID = groupID
	p.Image = imagePath
	return p, db.Instance.Create(&p).Error
}

// PostByID returns the post with its author and group preloaded.
func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Post{}, ErrNotFound
	}
	return p, err
}

// UpdatePost edits text, group and image in place. Only the author may edit;
// the creation timestamp never changes.
func UpdatePost(callerID, postID uint64, text string, groupID *uint64, imagePath string) (p Post, err error) {
	if err = db.Instance.First(&p, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	if p.UserID != callerID {
		return p, ErrForbidden
	}
	if strings.TrimSpace(text) == "" {
		return p, ErrTextEmpty
	}
	if groupID != nil {
		if err = db.Instance.First(&Group{}, *groupID).Error; err != nil {
			return p, ErrNotFound
		}
	}
	p.Text = text
	p.GroupID = groupID
	if imagePath != "" {
		p.Image = imagePath
	}
	err = db.Instance.Model(&p).Updates(map[string]interface{}{
		"text":     p.Text,
		"group_id": p.GroupID,
		"image":    p.Image,
	}).Error
	return p, err
}

// DeletePost removes the post and its comments. Not exposed over HTTP.
func DeletePost(id uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Post{}, id).Error
	})
}
