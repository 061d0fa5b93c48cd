package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/taren4ik/hw05-final/config"
	"github.com/taren4ik/hw05-final/forms"
	"github.com/taren4ik/hw05-final/logger"
	"github.com/taren4ik/hw05-final/models"
	"github.com/taren4ik/hw05-final/storage"
	"github.com/taren4ik/hw05-final/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const thumbSize = 800

func PostDetail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	post, err := models.PostByID(id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		logger.L.Error("post detail failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	comments, err := models.CommentsForPost(id)
	if err != nil {
		logger.L.Error("comments load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	commentInfos := make([]CommentInfo, 0, len(comments))
	for _, comment := range comments {
		commentInfos = append(commentInfos, CommentInfo{
			ID:      comment.ID,
			Text:    comment.Text,
			Author:  comment.User.Username,
			Created: comment.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"post":     postInfo(post),
		"comments": commentInfos,
		"form":     forms.CommentForm{},
	})
}

// PostCreateForm returns what the client needs to render the form - the
// groups a post may be filed under.
func PostCreateForm(c *gin.Context, user *models.User) {
	groups, err := models.GroupList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	options := make([]gin.H, 0, len(groups))
	for _, g := range groups {
		options = append(options, gin.H{"id": g.ID, "title": g.Title, "slug": g.Slug})
	}
	c.JSON(http.StatusOK, gin.H{"form": forms.PostForm{}, "groups": options})
}

func PostCreate(c *gin.Context, user *models.User) {
	form := forms.PostForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := form.Validate(); errs != nil {
		// Hand the submitted values back so the form is not reset
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}
	imagePath, err := saveUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Errors{"image": err.Error()}, "form": form})
		return
	}
	_, err = models.CreatePost(user.ID, form.Text, form.GroupID, imagePath)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Errors{"group": "no such group"}, "form": form})
		return
	}
	if err != nil {
		logger.L.Error("post create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// PostEditForm serves the current field values. A non-author lands back on
// the post detail instead of an error page.
func PostEditForm(c *gin.Context, user *models.User) {
	id, ok := postID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	post, err := models.PostByID(id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, "/posts/"+c.Param("id")+"/")
		return
	}
	groups, err := models.GroupList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	options := make([]gin.H, 0, len(groups))
	for _, g := range groups {
		options = append(options, gin.H{"id": g.ID, "title": g.Title, "slug": g.Slug})
	}
	c.JSON(http.StatusOK, gin.H{
		"form":    forms.PostForm{Text: post.Text, GroupID: post.GroupID},
		"groups":  options,
		"is_edit": true,
	})
}

func PostEdit(c *gin.Context, user *models.User) {
	id, ok := postID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	form := forms.PostForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := form.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form, "is_edit": true})
		return
	}
	imagePath, err := saveUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Errors{"image": err.Error()}, "form": form})
		return
	}
	_, err = models.UpdatePost(user.ID, id, form.Text, form.GroupID, imagePath)
	switch {
	case errors.Is(err, models.ErrForbidden):
		// Not this user's post - send them to look at it instead
		c.Redirect(http.StatusFound, "/posts/"+c.Param("id")+"/")
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case err != nil:
		logger.L.Error("post edit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
	default:
		c.Redirect(http.StatusFound, "/posts/"+c.Param("id")+"/")
	}
}

// saveUpload stores the optional "image" multipart field in the media bucket
// and returns the stored path, or "" when no file was attached.
func saveUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	path := config.UPLOAD_PREFIX + "/" + name
	stor := storage.GetDefaultStorage()

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	_, err = stor.Save(path, src)
	src.Close()
	if err != nil {
		return "", err
	}
	saveThumb(file, stor, config.UPLOAD_PREFIX+"/thumbs/"+name)
	return path, nil
}

func saveThumb(file *multipart.FileHeader, stor storage.StorageAPI, path string) {
	src, err := file.Open()
	if err != nil {
		return
	}
	defer src.Close()
	var buf bytes.Buffer
	if _, err := utils.CreateThumb(thumbSize, src, &buf); err != nil {
		logger.L.Warn("thumbnail failed", zap.String("file", file.Filename), zap.Error(err))
		return
	}
	if _, err := stor.Save(path, &buf); err != nil {
		logger.L.Warn("thumbnail save failed", zap.String("path", path), zap.Error(err))
	}
}
