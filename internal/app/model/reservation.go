package model

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if !next.Valid() {
		return false
	}
	switch {
	case s == next:
		return true
	case s == ReservationStatusCancelled:
		return false
	case next == ReservationStatusCancelled:
		return true
	}
	return s == ReservationStatusPending && next == ReservationStatusConfirmed
}

type Reservation struct {
	ID              uint              `gorm:"primarykey" json:"id"`
	Name            string            `gorm:"type:varchar(100);not null" json:"name"`
	Email           string            `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"` // one reservation per email
	PhoneNumber     string            `gorm:"type:varchar(40);not null" json:"phoneNumber"`
	Date            time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time            string            `gorm:"type:varchar(10);not null" json:"time"`
	NumberOfGuests  int               `gorm:"not null" json:"numberOfGuests"`
	SpecialRequests string            `gorm:"type:text;not null;default:''" json:"specialRequests"`
	Status          ReservationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func (Reservation) TableName() string {
	return "reservations"
}
