package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// ErrorInfo pairs an error code with a client-safe message
type ErrorInfo struct {
	Code    string
	Message string
}

// IsDuplicateKey reports whether err is a unique constraint violation.
// Covers translated gorm errors, raw postgres errors and the sqlite text form.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// ParseError maps a persistence error to a code and message without leaking driver detail
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Internal server error"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	if IsDuplicateKey(err) {
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "Resource already exists"}
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "foreign key constraint") {
		return ErrorInfo{Code: ResourceNotFound, Message: "Referenced resource not found"}
	}

	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{Code: InternalDatabaseError, Message: "Service temporarily unavailable, please try again"}
	}

	return ErrorInfo{Code: InternalServerError, Message: defaultMessage(context)}
}

func notFoundMessage(context string) string {
	c := strings.ToLower(context)
	switch {
	case strings.Contains(c, "order"):
		return "Order not found"
	case strings.Contains(c, "reservation"):
		return "Reservation not found"
	case strings.Contains(c, "table"):
		return "Table not found"
	case strings.Contains(c, "menu"):
		return "Menu item not found"
	}
	return "Requested resource not found"
}

func defaultMessage(context string) string {
	c := strings.ToLower(context)
	switch {
	case strings.Contains(c, "create"):
		return "Failed to create " + strings.TrimSpace(strings.Replace(c, "create", "", 1))
	case strings.Contains(c, "update"):
		return "Failed to update " + strings.TrimSpace(strings.Replace(c, "update", "", 1))
	case strings.Contains(c, "fetch"):
		return "Failed to fetch " + strings.TrimSpace(strings.Replace(c, "fetch", "", 1))
	}
	return "Internal server error"
}
