package errs

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidState      = errors.New("transition not allowed from current status")
	ErrConflict          = errors.New("component has outstanding lendings")
)
