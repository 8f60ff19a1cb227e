package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateName      = errors.New("name already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidRequest     = errors.New("invalid integration request")
	ErrIncompleteSnapshot = errors.New("incomplete snapshot")
	ErrNotReady           = errors.New("definition not ready for calculation")
)
