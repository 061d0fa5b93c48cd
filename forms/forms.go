// Package forms validates user-submitted form data. Handlers echo the
// submitted values back together with the field errors, so the caller never
// loses a half-filled form.
package forms

import (
	"strings"
)

// Errors maps a field name to what is wrong with it.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

const maxUsernameLen = 150

type PostForm struct {
	Text    string  `form:"text" json:"text"`
	GroupID *uint64 `form:"group" json:"group,omitempty"`
}

func (f *PostForm) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "this field is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type CommentForm struct {
	Text string `form:"text" json:"text"`
}

func (f *CommentForm) Validate() Errors {
	if strings.TrimSpace(f.Text) == "" {
		return Errors{"text": "this field is required"}
	}
	return nil
}

type SignupForm struct {
	Username string `form:"username" json:"username"`
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"-"`
}

func (f *SignupForm) Validate() Errors {
	errs := Errors{}
	switch {
	case f.Username == "":
		errs["username"] = "this field is required"
	case len(f.Username) > maxUsernameLen:
		errs["username"] = "too long"
	case !isUsername(f.Username):
		errs["username"] = "letters, digits, '.', '-' and '_' only"
	}
	if f.Password == "" {
		errs["password"] = "this field is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"-"`
}

func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	if f.Username == "" {
		errs["username"] = "this field is required"
	}
	if f.Password == "" {
		errs["password"] = "this field is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isUsername(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
