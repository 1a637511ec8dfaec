package repository

import (
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(reservation *model.Reservation) error
	FindByID(id uint) (*model.Reservation, error)
	FindAll() ([]model.Reservation, error)
	UpdateStatus(id uint, from, to model.ReservationStatus) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(reservation *model.Reservation) error {
	logger.Debug("Creating reservation in database", map[string]interface{}{
		"email": reservation.Email,
		"date":  reservation.Date.Format("2006-01-02"),
	})

	if err := r.db.Create(reservation).Error; err != nil {
		logger.Warn("Failed to create reservation in database", map[string]interface{}{
			"email": reservation.Email,
			"error": err.Error(),
		})
		return err
	}

	logger.Debug("Reservation created in database", map[string]interface{}{
		"reservation_id": reservation.ID,
	})
	return nil
}

func (r *reservationRepository) FindByID(id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindAll() ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.db.Order("date DESC").Order("id DESC").Find(&reservations).Error; err != nil {
		logger.Error("Failed to find reservations in database", err)
		return nil, err
	}

	logger.Debug("Reservations found in database", map[string]interface{}{
		"count": len(reservations),
	})
	return reservations, nil
}

// UpdateStatus moves the reservation from one status to another.
// It returns ErrStatusChanged when the stored status is no longer from.
func (r *reservationRepository) UpdateStatus(id uint, from, to model.ReservationStatus) error {
	result := r.db.Model(&model.Reservation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		logger.Error("Failed to update reservation status in database", result.Error, map[string]interface{}{
			"reservation_id": id,
			"from":           from,
			"to":             to,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&model.Reservation{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrStatusChanged
	}
	return nil
}
