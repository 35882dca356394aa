package therapist

import "errors"

var (
	ErrNotFound      = errors.New("therapist not found")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)
