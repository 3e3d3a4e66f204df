package e2e

import (
	"fmt"
	"sync/atomic"
	"testing"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test data factories, mirroring the fixtures the HTTP suite needs: users
// with sessions, enrollments with tickets, hotels with rooms, bookings.

var emailSeq int64

func nextEmail() string {
	return fmt.Sprintf("user%d@example.com", atomic.AddInt64(&emailSeq, 1))
}

func (s *E2ETestSuite) createUser(t *testing.T) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{Email: nextEmail(), PasswordHash: string(hash)}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

// generateValidToken issues a JWT and backs it with a session row, the way
// sign-in does.
func (s *E2ETestSuite) generateValidToken(t *testing.T, user *domain.User) string {
	t.Helper()
	token, err := s.jwtService.GenerateToken(user.ID)
	require.NoError(t, err)
	require.NoError(t, s.db.Create(&domain.Session{UserID: user.ID, Token: token}).Error)
	return token
}

// tokenWithoutSession issues a structurally valid JWT that has no session
// row behind it.
func (s *E2ETestSuite) tokenWithoutSession(t *testing.T) string {
	t.Helper()
	user := s.createUser(t)
	token, err := s.jwtService.GenerateToken(user.ID)
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) createEnrollment(t *testing.T, user *domain.User) *domain.Enrollment {
	t.Helper()
	enrollment := &domain.Enrollment{
		UserID:  user.ID,
		Name:    "Test Attendee",
		CPF:     "12345678901",
		Phone:   "+55 11 91234-5678",
		Address: "1 Event Plaza",
	}
	require.NoError(t, s.db.Create(enrollment).Error)
	return enrollment
}

func (s *E2ETestSuite) createTicketType(t *testing.T, isRemote, includesHotel bool) *domain.TicketType {
	t.Helper()
	tt := &domain.TicketType{
		Name:          fmt.Sprintf("type-%d", atomic.AddInt64(&emailSeq, 1)),
		Price:         25000,
		IsRemote:      isRemote,
		IncludesHotel: includesHotel,
	}
	require.NoError(t, s.db.Create(tt).Error)
	return tt
}

func (s *E2ETestSuite) createTicket(t *testing.T, enrollmentID, ticketTypeID int64, status domain.TicketStatus) *domain.Ticket {
	t.Helper()
	ticket := &domain.Ticket{
		EnrollmentID: enrollmentID,
		TicketTypeID: ticketTypeID,
		Status:       status,
	}
	require.NoError(t, s.db.Create(ticket).Error)
	return ticket
}

func (s *E2ETestSuite) createHotel(t *testing.T) *domain.Hotel {
	t.Helper()
	hotel := &domain.Hotel{Name: "Test Hotel", Image: "https://example.com/hotel.jpg"}
	require.NoError(t, s.db.Create(hotel).Error)
	return hotel
}

func (s *E2ETestSuite) createRoom(t *testing.T, hotelID int64, capacity int) *domain.Room {
	t.Helper()
	room := &domain.Room{Name: "101", Capacity: capacity, HotelID: hotelID}
	require.NoError(t, s.db.Create(room).Error)
	return room
}

func (s *E2ETestSuite) createBooking(t *testing.T, roomID, userID int64) *domain.Booking {
	t.Helper()
	booking := &domain.Booking{RoomID: roomID, UserID: userID}
	require.NoError(t, s.db.Create(booking).Error)
	return booking
}

// createMockBooking books the room for a fresh user.
func (s *E2ETestSuite) createMockBooking(t *testing.T, roomID int64) *domain.Booking {
	t.Helper()
	user := s.createUser(t)
	return s.createBooking(t, roomID, user.ID)
}

// sellOutRoom fills the room to capacity with fresh users.
func (s *E2ETestSuite) sellOutRoom(t *testing.T, room *domain.Room) {
	t.Helper()
	for i := 0; i < room.Capacity; i++ {
		s.createMockBooking(t, room.ID)
	}
}

// bookableUser builds a user whose ticket clears every reservation
// precondition: enrolled, paid, in person, hotel included.
func (s *E2ETestSuite) bookableUser(t *testing.T) (*domain.User, string) {
	t.Helper()
	user := s.createUser(t)
	token := s.generateValidToken(t, user)
	enrollment := s.createEnrollment(t, user)
	ticketType := s.createTicketType(t, false, true)
	s.createTicket(t, enrollment.ID, ticketType.ID, domain.TicketPaid)
	return user, token
}

func (s *E2ETestSuite) countBookings(t *testing.T, roomID int64) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, s.db.Model(&domain.Booking{}).Where("room_id = ?", roomID).Count(&cnt).Error)
	return cnt
}
