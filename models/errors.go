package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden - the caller is not allowed to modify the entity.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation - malformed or missing required input.
	ErrValidation = errors.New("validation failed")

	ErrTextEmpty = fmt.Errorf("%w: text is required", ErrValidation)
)
