package hotel

import "errors"

var (
	// ErrNotFound covers a missing enrollment or ticket as well as an
	// absent hotel: the catalog is invisible to users who cannot stay.
	ErrNotFound = errors.New("not found")

	// ErrPaymentRequired is signaled when the ticket exists but does not
	// grant hotel access (unpaid, remote, or hotel not included).
	ErrPaymentRequired = errors.New("ticket does not grant hotel access")
)
