package repository

import (
	"context"
	"errors"
	"time"

	"eventdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking only while the room's occupancy is below its
// capacity. The guard runs inside the INSERT itself, so two concurrent
// requests cannot both take the last slot: the loser inserts zero rows and
// gets ErrNoCapacity.
func (r *BookingRepository) Create(ctx context.Context, roomID, userID int64) (*domain.Booking, error) {
	now := time.Now().UTC()
	tx := r.db.WithContext(ctx).Exec(`
INSERT INTO bookings (user_id, room_id, created_at, updated_at)
SELECT ?, ?, ?, ?
WHERE (SELECT COUNT(1) FROM bookings WHERE room_id = ?) <
      (SELECT capacity FROM rooms WHERE id = ?)`,
		userID, roomID, now, now, roomID, roomID)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return nil, ErrDuplicateBooking
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNoCapacity
	}

	var b domain.Booking
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Last(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) RoomByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *BookingRepository) CountForRoom(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Count(&cnt).Error
	return cnt, err
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Preload("Room").
		Where("user_id = ?", userID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateRoom moves a booking to another room under the same in-statement
// capacity guard as Create.
func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE bookings SET room_id = ?, updated_at = ?
WHERE id = ?
  AND (SELECT COUNT(1) FROM bookings WHERE room_id = ?) <
      (SELECT capacity FROM rooms WHERE id = ?)`,
		roomID, time.Now().UTC(), bookingID, roomID, roomID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNoCapacity
	}
	return r.GetByID(ctx, bookingID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
