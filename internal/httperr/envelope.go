package httperr

import (
	"errors"
	"net/http"
	"time"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
)

// Envelope is the JSON body every non-2xx response carries.
type Envelope struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	TraceID   string    `json:"traceId"`
}

const genericMessage = "An unexpected error occurred. Please try again later."

// Classify maps any error to an HTTP status and a caller-safe message.
// Typed *Error values pass through; repository sentinels that escaped the
// usecase layer get conservative defaults; everything else is an
// internal error with the generic message (detail stays in the logs).
func Classify(err error) (int, string) {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Status, typed.Message
	}

	switch {
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, booking.ErrConflict):
		return http.StatusConflict, "A database update error occurred."
	case errors.Is(err, booking.ErrInvalidReference):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, genericMessage
}
