package httperr

import (
	"fmt"
	"net/http"
)

// Error is the typed failure the usecase layer hands to the HTTP
// boundary. Status drives the response code, Message lands in the
// error envelope verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newf(status int, format string, args ...any) *Error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

func NotFound(format string, args ...any) *Error {
	return newf(http.StatusNotFound, format, args...)
}

func BadRequest(format string, args ...any) *Error {
	return newf(http.StatusBadRequest, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newf(http.StatusConflict, format, args...)
}

// Validation marks a structurally incomplete payload. Same status as
// BadRequest, kept distinct so signup completeness failures read as
// validation errors in logs.
func Validation(format string, args ...any) *Error {
	return newf(http.StatusBadRequest, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newf(http.StatusUnauthorized, format, args...)
}

func Internal(format string, args ...any) *Error {
	return newf(http.StatusInternalServerError, format, args...)
}
