package handlers

import (
	"errors"
	"net/http"

	"github.com/taren4ik/hw05-final/auth"
	"github.com/taren4ik/hw05-final/feed"
	"github.com/taren4ik/hw05-final/logger"
	"github.com/taren4ik/hw05-final/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Index is the all-posts feed. Responses come out of the page cache for up
// to INDEX_CACHE_SECONDS; see main.go.
func Index(c *gin.Context) {
	page, err := feed.NewService().All(pageNumber(c))
	if err != nil {
		logger.L.Error("index feed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, pageInfo(page))
}

func GroupPosts(c *gin.Context) {
	group, page, err := feed.NewService().ByGroup(c.Param("slug"), pageNumber(c))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err != nil {
		logger.L.Error("group feed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group": gin.H{
			"title":       group.Title,
			"slug":        group.Slug,
			"description": group.Description,
		},
		"page": pageInfo(page),
	})
}

// Profile also reports whether the viewer follows the author. Looking at
// your own profile never reports following.
func Profile(c *gin.Context) {
	author, page, err := feed.NewService().ByAuthor(c.Param("username"), pageNumber(c))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		logger.L.Error("profile feed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	following := false
	if viewerID := auth.LoadSession(c).UserID(); viewerID != 0 && viewerID != author.ID {
		following = models.IsFollowing(viewerID, author.ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"author": gin.H{
			"username": author.Username,
			"name":     author.Name,
		},
		"following": following,
		"page":      pageInfo(page),
	})
}

func FollowIndex(c *gin.Context, user *models.User) {
	page, err := feed.NewService().Followed(user.ID, pageNumber(c))
	if err != nil {
		logger.L.Error("followed feed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, pageInfo(page))
}
