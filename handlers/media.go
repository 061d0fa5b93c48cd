package handlers

import (
	"strings"

	"github.com/taren4ik/hw05-final/storage"

	"github.com/gin-gonic/gin"
)

// Media serves uploaded images straight out of the media bucket.
func Media(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	storage.GetDefaultStorage().Serve(path, c.Request, c.Writer)
}
