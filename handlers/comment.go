package handlers

import (
	"errors"
	"net/http"

	"github.com/taren4ik/hw05-final/forms"
	"github.com/taren4ik/hw05-final/logger"
	"github.com/taren4ik/hw05-final/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

func CommentAdd(c *gin.Context, user *models.User) {
	id, ok := postID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	form := forms.CommentForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := form.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}
	_, err := models.AddComment(user.ID, id, form.Text)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		logger.L.Error("comment create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+c.Param("id")+"/")
}
