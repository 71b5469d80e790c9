package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	MessageNoRoomAvailable = "No rooms available for selected dates"
	MessageBookingNotFound = "Booking not found"
)

// ErrNoRoomAvailable is returned when every room of the requested type is
// taken for the requested dates. It keeps the 500 status callers already
// rely on.
var ErrNoRoomAvailable = &Failure{Code: http.StatusInternalServerError, Message: MessageNoRoomAvailable}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessage returns the message of a Failure anywhere in the chain, or
// fallback when err carries none.
func GetMessage(err error, fallback string) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return fallback
}

// Is reports whether err is a Failure with the same code and message as target.
func (e *Failure) Is(target error) bool {
	fail, ok := target.(*Failure)
	if !ok {
		return false
	}

	return e.Code == fail.Code && e.Message == fail.Message
}
