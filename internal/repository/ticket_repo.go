package repository

import (
	"context"
	"errors"

	"eventdesk/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// FindByEnrollmentID returns the enrollment's ticket with its type eagerly
// attached, or nil when the enrollment holds no ticket.
func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	var t domain.Ticket
	err := r.db.WithContext(ctx).Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
