package repository

import (
	"context"
	"errors"

	"eventdesk/internal/domain"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}
