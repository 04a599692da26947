package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/lunchly/models"
	"gorm.io/gorm"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.WithContext(ctx).First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound("reservation", id)
		}
		return nil, &models.DataAccessError{Op: "get reservation", Err: err}
	}
	return &reservation, nil
}

// Save inserts r when it has no ID yet, otherwise updates the row with r's ID.
// Updating an ID that has no row is a NotFound error.
func (s *ReservationService) Save(ctx context.Context, r *models.Reservation) error {
	db := s.DB.WithContext(ctx)
	if r.ID == 0 {
		if err := db.Omit("Customer").Create(r).Error; err != nil {
			return &models.DataAccessError{Op: "create reservation", Err: err}
		}
		return nil
	}

	result := db.Model(r).Select("*").Omit("id", "created_at", "Customer").Updates(r)
	if result.Error != nil {
		return &models.DataAccessError{Op: "update reservation", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound("reservation", r.ID)
	}
	return nil
}
