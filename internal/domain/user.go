package domain

import "time"

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session is one row per issued access token. A token without a live
// session row is rejected even when its signature and expiry are valid.
type Session struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"userId"`
	Token     string    `json:"token" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
