package auth

import "errors"

var (
	ErrLoginRequired = errors.New("login required")
	ErrEmptyToken    = errors.New("token must not be empty")
)
