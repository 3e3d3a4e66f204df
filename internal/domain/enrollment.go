package domain

import "time"

// Enrollment is the attendee record for an event. It is read-only from the
// booking core's perspective: its existence gates room reservation.
type Enrollment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"userId" gorm:"uniqueIndex"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf" gorm:"column:cpf"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
