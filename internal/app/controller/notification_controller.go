package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/elegance/restaurant-backend/internal/app/service"
	apperrors "github.com/elegance/restaurant-backend/internal/errors"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationService service.NotificationService
	exposeDetails       bool
}

func NewNotificationController(notificationService service.NotificationService, exposeDetails bool) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		exposeDetails:       exposeDetails,
	}
}

type ReservationEmailPayload struct {
	ID              FlexString `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phoneNumber"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	NumberOfGuests  FlexString `json:"numberOfGuests"`
	SpecialRequests string     `json:"specialRequests"`
}

type SendReservationEmailRequest struct {
	Reservation *ReservationEmailPayload `json:"reservation"`
}

type SendEmailRequest struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type DispatchResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Results service.DispatchResult `json:"results"`
}

func (p *ReservationEmailPayload) notice() service.ReservationNotice {
	date := strings.TrimSpace(p.Date)
	if parsed, err := service.ParseReservationDate(date); err == nil {
		date = parsed.Format("2006-01-02")
	}
	return service.ReservationNotice{
		ID:              p.ID.String(),
		Name:            strings.TrimSpace(p.Name),
		Email:           strings.TrimSpace(p.Email),
		PhoneNumber:     strings.TrimSpace(p.PhoneNumber),
		Date:            date,
		Time:            strings.TrimSpace(p.Time),
		NumberOfGuests:  p.NumberOfGuests.String(),
		SpecialRequests: p.SpecialRequests,
	}
}

// SendReservationEmail sends the customer confirmation and restaurant alert and reports each outcome
// POST /api/send-reservation-email
func (ctrl *NotificationController) SendReservationEmail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if !ctrl.notificationService.Configured() {
		log.Error("Email provider key is not set", service.ErrEmailNotConfigured)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.EmailNotConfigured, "Email service not configured")
		return
	}

	var req SendReservationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Reservation == nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Missing reservation data")
		return
	}

	notice := req.Reservation.notice()
	if err := service.ValidateNotice(notice); err != nil {
		respondServiceError(c, err, "send reservation email", ctrl.exposeDetails)
		return
	}

	result := ctrl.notificationService.DispatchReservation(c.Request.Context(), notice)

	status := http.StatusInternalServerError
	resp := DispatchResponse{Results: result}
	switch result.Outcome {
	case service.OutcomeSuccess:
		status = http.StatusOK
		resp.Success = true
		resp.Message = "All emails sent successfully"
	case service.OutcomePartial:
		status = http.StatusMultiStatus
		resp.Message = "Some emails could not be sent"
	default:
		resp.Message = "No emails could be sent"
	}

	log.Info("Reservation email dispatch finished", map[string]interface{}{
		"reservation_id": notice.ID,
		"outcome":        result.Outcome,
	})
	c.JSON(status, resp)
}

// SendEmail sends an arbitrary message through the provider
// POST /api/email
func (ctrl *NotificationController) SendEmail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	var missing []string
	if len(req.To) == 0 {
		missing = append(missing, "to")
	}
	if strings.TrimSpace(req.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(req.HTML) == "" {
		missing = append(missing, "html")
	}
	if len(missing) > 0 {
		apperrors.RespondWithMissingFields(c, missing, nil)
		return
	}

	id, err := ctrl.notificationService.SendEmail(c.Request.Context(), req.To, req.Subject, req.HTML)
	if err != nil {
		if errors.Is(err, service.ErrEmailNotConfigured) {
			respondServiceError(c, err, "send email", ctrl.exposeDetails)
			return
		}
		log.Error("Failed to send email", err, map[string]interface{}{
			"recipients": len(req.To),
		})
		resp := apperrors.ErrorResponse{Error: apperrors.EmailSendFailed, Message: "Failed to send email"}
		if ctrl.exposeDetails {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": id,
	})
}
