package hotel

import (
	"context"

	"eventdesk/internal/domain"
)

type HotelRepository interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetWithRooms(ctx context.Context, id int64) (*domain.Hotel, error)
}

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}
