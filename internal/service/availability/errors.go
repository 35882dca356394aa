package availability

import "errors"

var (
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrEmptyLabel        = errors.New("slot label must not be empty")
	ErrBadLabel          = errors.New("slot label must start with a clock time")
	ErrDuplicateLabel    = errors.New("slot label already offered by this therapist")
	ErrSlotNotFound      = errors.New("availability slot not found")
)
