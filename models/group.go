package models

import (
	"errors"

	"github.com/taren4ik/hw05-final/db"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(300);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func CreateGroup(title, slug, description string) (g Group, err error) {
	g.Title = title
	g.Slug = slug
	g.Description = description
	return g, db.Instance.Create(&g).Error
}

// GroupBySlug returns ErrNotFound when no group carries the slug.
func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Group{}, ErrNotFound
	}
	return g, err
}

func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title").Find(&groups).Error
	return
}

// DeleteGroup removes the group. Posts keep living: their group reference is
// cleared, never cascaded.
func DeleteGroup(id uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&Group{}, id).Error
	})
}
