package domain

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	TicketTypeID int64        `json:"ticketTypeId"`
	EnrollmentID int64        `json:"enrollmentId"`
	Status       TicketStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	TicketType *TicketType `json:"TicketType,omitempty" gorm:"foreignKey:TicketTypeID"`
}
