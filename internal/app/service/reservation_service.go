package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	apperrors "github.com/elegance/restaurant-backend/internal/errors"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var reservationDateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// CreateReservationInput carries the raw form values
type CreateReservationInput struct {
	Name            string
	Email           string
	PhoneNumber     string
	Date            string
	Time            string
	NumberOfGuests  string
	SpecialRequests *string
}

// ReservationNotifier schedules confirmation emails; it must return without waiting on delivery
type ReservationNotifier interface {
	NotifyReservation(reservation model.Reservation)
}

type ReservationService interface {
	CreateReservation(input CreateReservationInput) (*model.Reservation, error)
	ListReservations() ([]model.Reservation, error)
	UpdateReservationStatus(id uint, status model.ReservationStatus) (*model.Reservation, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	notifier        ReservationNotifier
}

// NewReservationService creates the reservation service. notifier may be nil.
func NewReservationService(reservationRepo repository.ReservationRepository, notifier ReservationNotifier) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		notifier:        notifier,
	}
}

// ParseReservationDate reads a calendar date, ignoring any time of day
func ParseReservationDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range reservationDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseGuestCount reads the leading integer of s, so "4" and "4 people" both give 4
func ParseGuestCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s[:end])
}

func validateReservation(input CreateReservationInput) (time.Time, int, error) {
	verr := &ValidationError{}
	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"phoneNumber", input.PhoneNumber},
		{"date", input.Date},
		{"time", input.Time},
		{"numberOfGuests", input.NumberOfGuests},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.MissingFields = append(verr.MissingFields, r.field)
		}
	}
	if len(verr.MissingFields) > 0 {
		return time.Time{}, 0, verr
	}

	date, err := ParseReservationDate(input.Date)
	if err != nil {
		verr.InvalidFields = append(verr.InvalidFields, "date")
	}
	guests, err := ParseGuestCount(input.NumberOfGuests)
	if err != nil || guests < 1 {
		verr.InvalidFields = append(verr.InvalidFields, "numberOfGuests")
	}
	if !verr.empty() {
		return time.Time{}, 0, verr
	}
	return date, guests, nil
}

func (s *reservationService) CreateReservation(input CreateReservationInput) (*model.Reservation, error) {
	date, guests, err := validateReservation(input)
	if err != nil {
		return nil, err
	}

	specialRequests := ""
	if input.SpecialRequests != nil {
		specialRequests = *input.SpecialRequests
	}

	reservation := &model.Reservation{
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		PhoneNumber:     strings.TrimSpace(input.PhoneNumber),
		Date:            date,
		Time:            strings.TrimSpace(input.Time),
		NumberOfGuests:  guests,
		SpecialRequests: specialRequests,
		Status:          model.ReservationStatusPending,
	}

	if err := s.reservationRepo.Create(reservation); err != nil {
		if apperrors.IsDuplicateKey(err) {
			logger.Warn("Duplicate reservation rejected", map[string]interface{}{
				"email": reservation.Email,
			})
			return nil, ErrDuplicateReservation
		}
		return nil, err
	}

	logger.Info("Reservation created", map[string]interface{}{
		"reservation_id": reservation.ID,
		"date":           reservation.Date.Format(dateLayout),
		"guests":         reservation.NumberOfGuests,
	})

	if s.notifier != nil {
		s.notifier.NotifyReservation(*reservation)
	}
	return reservation, nil
}

func (s *reservationService) ListReservations() ([]model.Reservation, error) {
	return s.reservationRepo.FindAll()
}

func (s *reservationService) UpdateReservationStatus(id uint, status model.ReservationStatus) (*model.Reservation, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	reservation, err := s.reservationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !reservation.Status.CanTransitionTo(status) {
		return nil, ErrInvalidStatusTransition
	}
	if reservation.Status == status {
		return reservation, nil
	}

	if err := s.reservationRepo.UpdateStatus(id, reservation.Status, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		if errors.Is(err, repository.ErrStatusChanged) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}
	reservation.Status = status

	logger.Info("Reservation status updated", map[string]interface{}{
		"reservation_id": id,
		"status":         status,
	})
	return reservation, nil
}
