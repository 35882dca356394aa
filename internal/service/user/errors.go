package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrBadPhone          = errors.New("phone number is not valid")
	ErrBadImageType      = errors.New("profile image must be jpeg, png or webp")
)
