package booking

import (
	"context"

	"eventdesk/internal/domain"
)

// BookingRepository is the data access the service needs for bookings and
// rooms. Create and UpdateRoom enforce room capacity inside the write and
// return repository.ErrNoCapacity when the guard fails.
type BookingRepository interface {
	Create(ctx context.Context, roomID, userID int64) (*domain.Booking, error)
	RoomByID(ctx context.Context, roomID int64) (*domain.Room, error)
	CountForRoom(ctx context.Context, roomID int64) (int64, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error)
}

// EnrollmentRepository supplies the read-only enrollment fact.
type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

// TicketRepository supplies the read-only ticket fact, type attached.
type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}
