package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrAuthRequired   = errors.New("sign in required")
	ErrInvalidInput   = errors.New("invalid input")
	ErrPersistence    = errors.New("persistence failed")
)
