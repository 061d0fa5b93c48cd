package auth

import (
	"net/http"
	"net/url"

	"github.com/taren4ik/hw05-final/models"

	"github.com/gin-gonic/gin"
)

// LoginPath is where anonymous callers of protected routes are sent. The
// original path rides along in the "next" query parameter.
const LoginPath = "/auth/login/"

// HandlerFunc runs with an authenticated user pre-loaded.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds the login check + User pre-loading
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
