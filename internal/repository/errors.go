package repository

import "errors"

var (
	// ErrNoCapacity is returned when a conditional booking write affects no
	// rows because the target room is already at capacity.
	ErrNoCapacity = errors.New("room capacity exhausted")

	// ErrDuplicateBooking is returned when the one-booking-per-user index
	// rejects an insert.
	ErrDuplicateBooking = errors.New("user already has a booking")
)
