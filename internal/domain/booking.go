package domain

import "time"

// Booking ties a user to a hotel room. The unique index on user_id keeps a
// user at one active booking; a move updates room_id in place.
type Booking struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"userId" gorm:"uniqueIndex:idx_one_booking_per_user"`
	RoomID    int64     `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room *Room `json:"Room,omitempty" gorm:"foreignKey:RoomID"`
}
