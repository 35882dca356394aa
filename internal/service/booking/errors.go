package booking

import "errors"

var (
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrNotAccepting      = errors.New("therapist is not accepting bookings")
	ErrBadDate           = errors.New("appointment date must be in 2006-01-02 form")
	ErrBadLabel          = errors.New("slot label must carry a parseable start time")
	ErrBadSessionType    = errors.New("session type must be online or in_person")
	ErrSlotNotOffered    = errors.New("slot is not offered by this therapist")
	ErrSlotTaken         = errors.New("slot is already booked for this date")
)
