package booking

import (
	"context"
	"errors"

	"eventdesk/internal/domain"
	"eventdesk/internal/repository"
)

type Service struct {
	bookings    BookingRepository
	enrollments EnrollmentRepository
	tickets     TicketRepository
}

func NewService(
	bookings BookingRepository,
	enrollments EnrollmentRepository,
	tickets TicketRepository,
) *Service {
	return &Service{
		bookings:    bookings,
		enrollments: enrollments,
		tickets:     tickets,
	}
}

// ReserveRoom books a room for the user. Preconditions run in order and the
// first failure wins: enrollment, eligible ticket, room existence, capacity,
// no existing booking. The final insert re-checks capacity and the
// one-booking-per-user index atomically, so a concurrent reservation cannot
// slip past the read-side checks.
func (s *Service) ReserveRoom(ctx context.Context, roomID, userID int64) (*domain.Booking, error) {
	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentRequired
	}

	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, err
	}
	if !ticketEligible(ticket) {
		return nil, ErrTicketIneligible
	}

	room, err := s.bookings.RoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	occupancy, err := s.bookings.CountForRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if occupancy >= int64(room.Capacity) {
		return nil, ErrRoomUnavailable
	}

	existing, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyBooked
	}

	b, err := s.bookings.Create(ctx, roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoCapacity):
			return nil, ErrRoomUnavailable
		case errors.Is(err, repository.ErrDuplicateBooking):
			return nil, ErrAlreadyBooked
		}
		return nil, err
	}
	return b, nil
}

// FetchBooking returns the user's booking with its room attached.
func (s *Service) FetchBooking(ctx context.Context, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// ChangeBookingRoom moves the user's booking to another room and returns the
// booking id.
func (s *Service) ChangeBookingRoom(ctx context.Context, roomID, userID, bookingID int64) (int64, error) {
	owned, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if owned == nil {
		return 0, ErrNotBookingOwner
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, ErrBookingNotFound
	}
	if b.UserID != userID {
		return 0, ErrNotBookingOwner
	}

	room, err := s.bookings.RoomByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if room == nil {
		return 0, ErrRoomNotFound
	}

	occupancy, err := s.bookings.CountForRoom(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if occupancy >= int64(room.Capacity) {
		return 0, ErrRoomUnavailable
	}

	updated, err := s.bookings.UpdateRoom(ctx, bookingID, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNoCapacity) {
			return 0, ErrRoomUnavailable
		}
		return 0, err
	}
	return updated.ID, nil
}

// Eligible tickets are paid (not merely reserved), in person, and include
// hotel accommodation.
func ticketEligible(t *domain.Ticket) bool {
	if t == nil || t.TicketType == nil {
		return false
	}
	if t.Status == domain.TicketReserved {
		return false
	}
	return !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
