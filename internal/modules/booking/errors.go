package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound marks the absent-entity error kind. Everything else the
// service signals is a business-rule failure; handlers only need to tell
// the two kinds apart.
var ErrNotFound = errors.New("not found")

var (
	ErrRoomNotFound    = fmt.Errorf("room %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
)

// Business-rule failures. The messages are part of the API: they are echoed
// verbatim in 403 payloads.
var (
	ErrEnrollmentRequired = errors.New("Enrollment is needed")
	ErrTicketIneligible   = errors.New("Ticket Error")
	ErrRoomUnavailable    = errors.New("Room is currently unavailable")
	ErrNotBookingOwner    = errors.New("No reservation by this user was found")
	ErrAlreadyBooked      = errors.New("User already has a booking")
)
