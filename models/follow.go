package models

import (
	"github.com/taren4ik/hw05-final/db"
)

// Follow is a directed subscription edge: UserID follows AuthorID. The
// composite unique index makes duplicate subscribes a no-op even when two
// requests race.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_follow,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_follow,unique"`
	Author    User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor subscribes userID to authorID. Self-follow is silently
// ignored; subscribing twice leaves a single edge.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return nil
	}
	follow := Follow{UserID: userID, AuthorID: authorID}
	return db.Instance.Where(&Follow{UserID: userID, AuthorID: authorID}).FirstOrCreate(&follow).Error
}

// UnfollowAuthor removes the edge. A missing edge is ErrNotFound: deletion
// needs an existing edge, deliberately asymmetric with FollowAuthor.
func UnfollowAuthor(userID, authorID uint64) error {
	result := db.Instance.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func IsFollowing(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
