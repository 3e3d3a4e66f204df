package hotel

import (
	"context"

	"eventdesk/internal/domain"
)

type Service struct {
	hotels      HotelRepository
	enrollments EnrollmentRepository
	tickets     TicketRepository
}

func NewService(
	hotels HotelRepository,
	enrollments EnrollmentRepository,
	tickets TicketRepository,
) *Service {
	return &Service{
		hotels:      hotels,
		enrollments: enrollments,
		tickets:     tickets,
	}
}

func (s *Service) ListHotels(ctx context.Context, userID int64) ([]domain.Hotel, error) {
	if err := s.checkAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, ErrNotFound
	}
	return hotels, nil
}

func (s *Service) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*domain.Hotel, error) {
	if err := s.checkAccess(ctx, userID); err != nil {
		return nil, err
	}

	h, err := s.hotels.GetWithRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNotFound
	}
	return h, nil
}

// checkAccess gates the catalog: the user must be enrolled and hold a paid,
// in-person, hotel-inclusive ticket.
func (s *Service) checkAccess(ctx context.Context, userID int64) error {
	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return ErrNotFound
	}

	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil || ticket.TicketType == nil {
		return ErrNotFound
	}

	if ticket.Status != domain.TicketPaid || ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return ErrPaymentRequired
	}
	return nil
}
