package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/elegance/restaurant-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restaurantInbox = "kitchen@elegance.example"

func testNotificationConfig() NotificationConfig {
	return NotificationConfig{
		From:            "Elegance Restaurant <hello@elegance.example>",
		RestaurantEmail: restaurantInbox,
		RestaurantName:  "Elegance Restaurant",
		BaseURL:         "https://elegance.example",
	}
}

func testNotice() ReservationNotice {
	return ReservationNotice{
		ID:             "42",
		Name:           "Ayse Yilmaz",
		Email:          "ayse@example.com",
		PhoneNumber:    "+90 555 123 4567",
		Date:           "2026-11-20",
		Time:           "19:30",
		NumberOfGuests: "4",
	}
}

func TestNotificationService_DispatchReservation_Success(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, testNotificationConfig())

	result := svc.DispatchReservation(context.Background(), testNotice())
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.True(t, result.Customer.Success)
	assert.True(t, result.Restaurant.Success)
	assert.NotEmpty(t, result.Customer.ID)

	messages := sender.messages()
	require.Len(t, messages, 2)
	subjects := map[string]string{}
	for _, m := range messages {
		subjects[m.To[0]] = m.Subject
		assert.Equal(t, testNotificationConfig().From, m.From)
	}
	assert.Equal(t, "Reservation Confirmation - #42 | Elegance Restaurant", subjects["ayse@example.com"])
	assert.Equal(t, "NEW RESERVATION #42 - Ayse Yilmaz | 2026-11-20", subjects[restaurantInbox])
}

func TestNotificationService_DispatchReservation_Partial(t *testing.T) {
	sender := &fakeSender{failFor: map[string]bool{restaurantInbox: true}}
	svc := NewNotificationService(sender, testNotificationConfig())

	result := svc.DispatchReservation(context.Background(), testNotice())
	assert.Equal(t, OutcomePartial, result.Outcome)
	assert.True(t, result.Customer.Success)
	assert.False(t, result.Restaurant.Success)
	assert.Contains(t, result.Restaurant.Error, "provider rejected")
	assert.Len(t, sender.messages(), 1)
}

func TestNotificationService_DispatchReservation_AllFailed(t *testing.T) {
	sender := &fakeSender{failFor: map[string]bool{restaurantInbox: true, "ayse@example.com": true}}
	svc := NewNotificationService(sender, testNotificationConfig())

	result := svc.DispatchReservation(context.Background(), testNotice())
	assert.Equal(t, OutcomeFailure, result.Outcome)
}

func TestNotificationService_DispatchReservation_NotConfigured(t *testing.T) {
	var logs bytes.Buffer
	logger.Initialize(logger.Config{Level: "debug", Format: "json", Output: &logs})
	t.Cleanup(func() { logger.Initialize(logger.Config{Level: "error", Format: "json", Output: io.Discard}) })

	svc := NewNotificationService(nil, testNotificationConfig())
	assert.False(t, svc.Configured())

	notice := testNotice()
	result := svc.DispatchReservation(context.Background(), notice)
	assert.Equal(t, OutcomeNotConfigured, result.Outcome)
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), `"reservation_id":"`+notice.ID+`"`)
	assert.False(t, result.Customer.Success)
	assert.Equal(t, ErrEmailNotConfigured.Error(), result.Restaurant.Error)

	_, err := svc.SendEmail(context.Background(), []string{"a@example.com"}, "s", "<p>x</p>")
	assert.ErrorIs(t, err, ErrEmailNotConfigured)
}

func TestNotificationService_TemplatesEscapeInput(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, testNotificationConfig())

	notice := testNotice()
	notice.SpecialRequests = "<script>alert(1)</script>"
	svc.DispatchReservation(context.Background(), notice)

	for _, m := range sender.messages() {
		assert.False(t, strings.Contains(m.HTML, "<script>"))
		assert.Contains(t, m.HTML, "https://elegance.example")
	}
}

func TestValidateNotice(t *testing.T) {
	assert.NoError(t, ValidateNotice(testNotice()))

	notice := testNotice()
	notice.ID = ""
	notice.Time = " "
	err := ValidateNotice(notice)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"id", "time"}, verr.MissingFields)
}

func TestDispatchResult_Classify(t *testing.T) {
	r := DispatchResult{Customer: SendResult{Success: false}, Restaurant: SendResult{Success: true}}
	assert.Equal(t, OutcomePartial, r.Classify())
}
