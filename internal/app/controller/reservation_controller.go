package controller

import (
	"errors"
	"net/http"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/service"
	apperrors "github.com/elegance/restaurant-backend/internal/errors"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	reservationService service.ReservationService
	exposeDetails      bool
}

func NewReservationController(reservationService service.ReservationService, exposeDetails bool) *ReservationController {
	return &ReservationController{
		reservationService: reservationService,
		exposeDetails:      exposeDetails,
	}
}

type CreateReservationRequest struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phoneNumber"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	NumberOfGuests  FlexString `json:"numberOfGuests"`
	SpecialRequests *string    `json:"specialRequests"`
}

type UpdateReservationStatusRequest struct {
	ReservationID uint                    `json:"reservationId"`
	Status        model.ReservationStatus `json:"status"`
}

// CreateReservation validates and stores a booking; confirmation emails are sent in the background
// POST /api/reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid reservation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid reservation data")
		return
	}

	reservation, err := ctrl.reservationService.CreateReservation(service.CreateReservationInput{
		Name:            req.Name,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Date:            req.Date,
		Time:            req.Time,
		NumberOfGuests:  req.NumberOfGuests.String(),
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			log.Warn("Reservation rejected", map[string]interface{}{
				"missing_fields": verr.MissingFields,
				"invalid_fields": verr.InvalidFields,
			})
		}
		respondServiceError(c, err, "create reservation", ctrl.exposeDetails)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Reservation created successfully",
		"reservation": reservation,
	})
}

// GetReservations lists reservations by date, latest first
// GET /api/reservations
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := ctrl.reservationService.ListReservations()
	if err != nil {
		respondServiceError(c, err, "fetch reservations", ctrl.exposeDetails)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// UpdateReservationStatus confirms or cancels a reservation
// PUT /api/reservations
func (ctrl *ReservationController) UpdateReservationStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReservationID == 0 || !req.Status.Valid() {
		apperrors.BadRequest(c, apperrors.ValidationInvalidStatus, "Invalid reservation ID or status")
		return
	}

	reservation, err := ctrl.reservationService.UpdateReservationStatus(req.ReservationID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatusTransition) {
			apperrors.Conflict(c, apperrors.ReservationInvalidTransition, "Reservation cannot move to "+string(req.Status))
			return
		}
		respondServiceError(c, err, "update reservation", ctrl.exposeDetails)
		return
	}

	log.Info("Reservation status updated", map[string]interface{}{
		"reservation_id": reservation.ID,
		"status":         reservation.Status,
	})
	c.JSON(http.StatusOK, gin.H{
		"message":     "Reservation status updated",
		"reservation": reservation,
	})
}
