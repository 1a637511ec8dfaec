package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"github.com/elegance/restaurant-backend/pkg/mailer"
	"golang.org/x/sync/errgroup"
)

type NotificationConfig struct {
	From            string
	RestaurantEmail string
	RestaurantName  string
	BaseURL         string
}

// ReservationNotice is the display form of a reservation used in emails
type ReservationNotice struct {
	ID              string
	Name            string
	Email           string
	PhoneNumber     string
	Date            string
	Time            string
	NumberOfGuests  string
	SpecialRequests string
}

func NoticeFromReservation(r model.Reservation) ReservationNotice {
	return ReservationNotice{
		ID:              strconv.FormatUint(uint64(r.ID), 10),
		Name:            r.Name,
		Email:           r.Email,
		PhoneNumber:     r.PhoneNumber,
		Date:            r.Date.Format(dateLayout),
		Time:            r.Time,
		NumberOfGuests:  strconv.Itoa(r.NumberOfGuests),
		SpecialRequests: r.SpecialRequests,
	}
}

// ValidateNotice reports absent fields in the order they appear on the reservation form
func ValidateNotice(n ReservationNotice) error {
	verr := &ValidationError{}
	fields := []struct {
		name  string
		value string
	}{
		{"id", n.ID},
		{"name", n.Name},
		{"email", n.Email},
		{"phoneNumber", n.PhoneNumber},
		{"date", n.Date},
		{"time", n.Time},
		{"numberOfGuests", n.NumberOfGuests},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			verr.MissingFields = append(verr.MissingFields, f.name)
		}
	}
	if verr.empty() {
		return nil
	}
	return verr
}

type SendResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type DispatchOutcome string

const (
	OutcomeSuccess       DispatchOutcome = "success"
	OutcomePartial       DispatchOutcome = "partial"
	OutcomeFailure       DispatchOutcome = "failure"
	OutcomeNotConfigured DispatchOutcome = "not_configured"
)

type DispatchResult struct {
	Customer   SendResult      `json:"customer"`
	Restaurant SendResult      `json:"restaurant"`
	Outcome    DispatchOutcome `json:"-"`
}

// Classify derives the outcome from the two independent sends
func (r *DispatchResult) Classify() DispatchOutcome {
	switch {
	case r.Customer.Success && r.Restaurant.Success:
		return OutcomeSuccess
	case r.Customer.Success || r.Restaurant.Success:
		return OutcomePartial
	}
	return OutcomeFailure
}

type NotificationService interface {
	Configured() bool
	DispatchReservation(ctx context.Context, notice ReservationNotice) DispatchResult
	SendEmail(ctx context.Context, to []string, subject, html string) (string, error)
}

type notificationService struct {
	sender mailer.Sender
	config NotificationConfig
}

// NewNotificationService creates the dispatcher. A nil sender means the provider is not configured.
func NewNotificationService(sender mailer.Sender, config NotificationConfig) NotificationService {
	return &notificationService{sender: sender, config: config}
}

func (s *notificationService) Configured() bool {
	return s.sender != nil
}

// DispatchReservation sends the customer confirmation and the restaurant alert in parallel.
// One failing does not affect the other.
func (s *notificationService) DispatchReservation(ctx context.Context, notice ReservationNotice) DispatchResult {
	if !s.Configured() {
		logger.Warn("Reservation emails skipped, email provider not configured", map[string]interface{}{
			"reservation_id": notice.ID,
		})
		failed := SendResult{Success: false, Error: ErrEmailNotConfigured.Error()}
		return DispatchResult{Customer: failed, Restaurant: failed, Outcome: OutcomeNotConfigured}
	}

	var result DispatchResult
	var g errgroup.Group
	g.Go(func() error {
		result.Customer = s.sendTemplate(ctx, []string{notice.Email}, s.customerSubject(notice), customerTemplate, notice)
		return nil
	})
	g.Go(func() error {
		result.Restaurant = s.sendTemplate(ctx, []string{s.config.RestaurantEmail}, s.restaurantSubject(notice), restaurantTemplate, notice)
		return nil
	})
	_ = g.Wait()

	result.Outcome = result.Classify()
	fields := map[string]interface{}{
		"reservation_id":     notice.ID,
		"outcome":            result.Outcome,
		"customer_success":   result.Customer.Success,
		"restaurant_success": result.Restaurant.Success,
	}
	if result.Outcome == OutcomeSuccess {
		logger.Info("Reservation emails sent", fields)
	} else {
		fields["customer_error"] = result.Customer.Error
		fields["restaurant_error"] = result.Restaurant.Error
		logger.Warn("Reservation emails not fully delivered", fields)
	}
	return result
}

func (s *notificationService) SendEmail(ctx context.Context, to []string, subject, html string) (string, error) {
	if !s.Configured() {
		return "", ErrEmailNotConfigured
	}
	return s.sender.Send(ctx, mailer.Message{
		From:    s.config.From,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
}

func (s *notificationService) customerSubject(n ReservationNotice) string {
	return fmt.Sprintf("Reservation Confirmation - #%s | %s", n.ID, s.config.RestaurantName)
}

func (s *notificationService) restaurantSubject(n ReservationNotice) string {
	return fmt.Sprintf("NEW RESERVATION #%s - %s | %s", n.ID, n.Name, n.Date)
}

type emailData struct {
	ReservationNotice
	RestaurantName string
	BaseURL        string
}

func (s *notificationService) sendTemplate(ctx context.Context, to []string, subject string, tmpl *template.Template, notice ReservationNotice) SendResult {
	var body bytes.Buffer
	data := emailData{ReservationNotice: notice, RestaurantName: s.config.RestaurantName, BaseURL: s.config.BaseURL}
	if err := tmpl.Execute(&body, data); err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}

	id, err := s.SendEmail(ctx, to, subject, body.String())
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}
	return SendResult{Success: true, ID: id}
}

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h1>{{.RestaurantName}}</h1>
  <p>Dear {{.Name}},</p>
  <p>Thank you for your reservation. We have received your request and will confirm it shortly.</p>
  <table cellpadding="6">
    <tr><td><strong>Reservation</strong></td><td>#{{.ID}}</td></tr>
    <tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
    <tr><td><strong>Time</strong></td><td>{{.Time}}</td></tr>
    <tr><td><strong>Guests</strong></td><td>{{.NumberOfGuests}}</td></tr>
    <tr><td><strong>Phone</strong></td><td>{{.PhoneNumber}}</td></tr>
    {{if .SpecialRequests}}<tr><td><strong>Special requests</strong></td><td>{{.SpecialRequests}}</td></tr>{{end}}
  </table>
  <p>If you need to change your booking, reply to this email or call us.</p>
  <p><a href="{{.BaseURL}}">{{.BaseURL}}</a></p>
</body>
</html>`))

var restaurantTemplate = template.Must(template.New("restaurant").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New reservation #{{.ID}}</h2>
  <table cellpadding="6">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>Phone</strong></td><td>{{.PhoneNumber}}</td></tr>
    <tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
    <tr><td><strong>Time</strong></td><td>{{.Time}}</td></tr>
    <tr><td><strong>Guests</strong></td><td>{{.NumberOfGuests}}</td></tr>
    <tr><td><strong>Special requests</strong></td><td>{{if .SpecialRequests}}{{.SpecialRequests}}{{else}}-{{end}}</td></tr>
  </table>
  <p><a href="{{.BaseURL}}/admin/reservations">Open reservations</a></p>
</body>
</html>`))
