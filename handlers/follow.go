package handlers

import (
	"errors"
	"net/http"

	"github.com/taren4ik/hw05-final/logger"
	"github.com/taren4ik/hw05-final/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileFollow subscribes the caller to the author. Following yourself or
// an already-followed author is a quiet no-op.
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	if err := models.FollowAuthor(user.ID, author.ID); err != nil {
		logger.L.Error("follow failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// ProfileUnfollow removes the subscription. Unlike follow, a missing edge is
// a 404 - the store must have something to delete.
func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	err = models.UnfollowAuthor(user.ID, author.ID)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not following"})
		return
	}
	if err != nil {
		logger.L.Error("unfollow failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
