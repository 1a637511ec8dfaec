package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields,omitempty"`
	InvalidFields []string `json:"invalidFields,omitempty"`
	Details       string   `json:"details,omitempty"` // development only
}

// RespondWithError writes an error body with the given status and code
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func Conflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusConflict, errorCode, message)
}

func ServiceUnavailable(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusServiceUnavailable, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// RespondWithMissingFields reports required fields that were absent from the request
func RespondWithMissingFields(c *gin.Context, missing, invalid []string) {
	message := "Missing required fields"
	if len(missing) == 0 {
		message = "Invalid field values"
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:         ValidationMissingFields,
		Message:       message,
		MissingFields: missing,
		InvalidFields: invalid,
	})
}

// RespondWithInternal writes err with the status matching its parsed code, 500 unless the error is a
// missing record (404) or a unique violation (409). Driver detail is only attached when exposeDetails is set.
func RespondWithInternal(c *gin.Context, err error, context string, exposeDetails bool) {
	info := ParseError(err, context)
	resp := ErrorResponse{Error: info.Code, Message: info.Message}
	if exposeDetails && err != nil {
		resp.Details = err.Error()
	}
	c.JSON(statusForCode(info.Code), resp)
}

func statusForCode(code string) int {
	switch code {
	case ResourceNotFound:
		return http.StatusNotFound
	case ResourceAlreadyExists:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
