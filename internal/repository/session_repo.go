package repository

import (
	"context"
	"errors"
	"time"

	"eventdesk/internal/domain"

	"gorm.io/gorm"
)

// SessionRepository provides DB access for issued-token sessions.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.Session{})
	return tx.RowsAffected, tx.Error
}
