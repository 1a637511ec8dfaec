package controller

import (
	"net/http"
	"testing"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationEnvelope struct {
	Message     string `json:"message"`
	Reservation struct {
		ID              uint   `json:"id"`
		Email           string `json:"email"`
		NumberOfGuests  int    `json:"numberOfGuests"`
		SpecialRequests string `json:"specialRequests"`
		Status          string `json:"status"`
	} `json:"reservation"`
}

func reservationBody() map[string]interface{} {
	return map[string]interface{}{
		"name":           "Ayse Yilmaz",
		"email":          "ayse@example.com",
		"phoneNumber":    "+90 555 123 4567",
		"date":           "2026-11-20",
		"time":           "19:30",
		"numberOfGuests": "4",
	}
}

func TestReservationController_CreateReservation_CoercesGuests(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	w := env.do(t, http.MethodPost, "/reservations", reservationBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp reservationEnvelope
	decode(t, w, &resp)
	assert.Equal(t, 4, resp.Reservation.NumberOfGuests)
	assert.Equal(t, "", resp.Reservation.SpecialRequests)
	assert.Equal(t, "PENDING", resp.Reservation.Status)

	var stored model.Reservation
	require.NoError(t, env.db.First(&stored, resp.Reservation.ID).Error)
	assert.Equal(t, 4, stored.NumberOfGuests)
}

func TestReservationController_CreateReservation_NumericGuests(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	body := reservationBody()
	body["numberOfGuests"] = 6
	w := env.do(t, http.MethodPost, "/reservations", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp reservationEnvelope
	decode(t, w, &resp)
	assert.Equal(t, 6, resp.Reservation.NumberOfGuests)
}

func TestReservationController_CreateReservation_MissingEmail(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	body := reservationBody()
	delete(body, "email")
	w := env.do(t, http.MethodPost, "/reservations", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error         string   `json:"error"`
		MissingFields []string `json:"missingFields"`
	}
	decode(t, w, &resp)
	assert.Equal(t, []string{"email"}, resp.MissingFields)
}

func TestReservationController_CreateReservation_InvalidGuests(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	body := reservationBody()
	body["numberOfGuests"] = "a few"
	w := env.do(t, http.MethodPost, "/reservations", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		InvalidFields []string `json:"invalidFields"`
	}
	decode(t, w, &resp)
	assert.Equal(t, []string{"numberOfGuests"}, resp.InvalidFields)
}

func TestReservationController_CreateReservation_Duplicate(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	w := env.do(t, http.MethodPost, "/reservations", reservationBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/reservations", reservationBody())
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	env.db.Model(&model.Reservation{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestReservationController_GetReservations(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	first := reservationBody()
	second := reservationBody()
	second["email"] = "mehmet@example.com"
	second["date"] = "2026-12-31"
	env.do(t, http.MethodPost, "/reservations", first)
	env.do(t, http.MethodPost, "/reservations", second)

	w := env.do(t, http.MethodGet, "/reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reservations []struct {
		Email string `json:"email"`
	}
	decode(t, w, &reservations)
	require.Len(t, reservations, 2)
	assert.Equal(t, "mehmet@example.com", reservations[0].Email)
}

func TestReservationController_UpdateReservationStatus(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	w := env.do(t, http.MethodPost, "/reservations", reservationBody())
	var created reservationEnvelope
	decode(t, w, &created)
	id := created.Reservation.ID

	w = env.do(t, http.MethodPut, "/reservations", map[string]interface{}{"reservationId": id, "status": "CONFIRMED"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated reservationEnvelope
	decode(t, w, &updated)
	assert.Equal(t, "CONFIRMED", updated.Reservation.Status)

	w = env.do(t, http.MethodPut, "/reservations", map[string]interface{}{"reservationId": id, "status": "PENDING"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPut, "/reservations", map[string]interface{}{"reservationId": id, "status": "SEATED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/reservations", map[string]interface{}{"reservationId": 999, "status": "CANCELLED"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
