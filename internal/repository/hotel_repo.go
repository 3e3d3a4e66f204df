package repository

import (
	"context"
	"errors"

	"eventdesk/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	err := r.db.WithContext(ctx).Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) GetWithRooms(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.WithContext(ctx).Preload("Rooms").First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}
