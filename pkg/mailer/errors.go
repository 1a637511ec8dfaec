package mailer

import "errors"

var (
	// ErrNotConfigured is returned when no API key is present
	ErrNotConfigured = errors.New("email provider is not configured")

	// ErrInvalidMessage is returned when a message lacks a recipient, sender or subject
	ErrInvalidMessage = errors.New("invalid email message")

	// ErrSendFailed wraps provider-side failures
	ErrSendFailed = errors.New("email send failed")
)
