package auth

import "errors"

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailAlreadyExists = errors.New("email address is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be user or therapist")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrSessionNotFound    = errors.New("session not found or expired")
)
