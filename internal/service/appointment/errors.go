package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrNotOwner          = errors.New("appointment does not belong to this actor")
	ErrInvalidTransition = errors.New("appointment is not pending")
)
