package handlers

import (
	"net/http"

	"github.com/taren4ik/hw05-final/auth"
	"github.com/taren4ik/hw05-final/forms"
	"github.com/taren4ik/hw05-final/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func Signup(c *gin.Context) {
	form := forms.SignupForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := form.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}
	user, err := models.UserCreate(form.Username, form.Name, form.Email, form.Password)
	if err != nil {
		// Most likely the unique index on username
		c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Errors{"username": "already taken"}, "form": form})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	c.JSON(http.StatusOK, gin.H{"error": "", "username": user.Username})
}

// LoginForm is where protected routes send anonymous callers. The "next"
// parameter is echoed back so the client can return after logging in.
func LoginForm(c *gin.Context) {
	next := c.Query("next")
	if next == "" {
		next = "/"
	}
	c.JSON(http.StatusOK, gin.H{"form": forms.LoginForm{}, "next": next})
}

func Login(c *gin.Context) {
	form := forms.LoginForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := form.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}
	user, success := models.UserLogin(form.Username, form.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong username or password"})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	next := c.Query("next")
	if next == "" {
		next = "/"
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "username": user.Username, "next": next})
}

func Logout(c *gin.Context, user *models.User) {
	session := auth.LoadSession(c)
	session.LogoutUser()
	c.JSON(http.StatusOK, gin.H{"error": ""})
}
