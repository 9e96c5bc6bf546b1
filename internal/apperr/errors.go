// Package apperr defines the error kinds shared by all FitBuddy flows
// and how they are surfaced over HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/2beens/fitbuddy/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var (
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrAuthFailed         = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrProfileRequired    = errors.New("complete your profile first")
	ErrConflict           = errors.New("conflict")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Invalid(field, format string, args ...any) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Conflict wraps ErrConflict with a user facing reason.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}

// NotFound wraps ErrNotFound with the missing subject.
func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

// Storage wraps a driver error so callers can match ErrStorageUnavailable.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}

// ValidationDetails flattens (possibly multierr combined) validation errors.
func ValidationDetails(err error) []*ValidationError {
	var details []*ValidationError
	for _, e := range multierr.Errors(err) {
		var ve *ValidationError
		if errors.As(e, &ve) {
			details = append(details, ve)
		}
	}
	return details
}

func IsValidation(err error) bool {
	return len(ValidationDetails(err)) > 0
}

func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateAccount), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrAuthFailed), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrProfileRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error   string             `json:"error"`
	Details []*ValidationError `json:"details,omitempty"`
}

// WriteError writes the JSON error body. Internal details of storage and
// unexpected errors are logged, never sent to the client.
func WriteError(w http.ResponseWriter, err error) {
	status := Status(err)
	body := errorBody{}
	switch status {
	case http.StatusBadRequest:
		body.Error = "validation failed"
		body.Details = ValidationDetails(err)
	case http.StatusServiceUnavailable:
		log.Errorf("storage error: %s", err)
		body.Error = ErrStorageUnavailable.Error()
	case http.StatusInternalServerError:
		log.Errorf("internal error: %s", err)
		body.Error = "internal server error"
	case http.StatusUnauthorized:
		// never leak which of the credentials was wrong
		body.Error = ErrUnauthorized.Error()
		if errors.Is(err, ErrAuthFailed) {
			body.Error = ErrAuthFailed.Error()
		}
	default:
		body.Error = publicMessage(err)
	}
	pkg.WriteJSONResponse(w, status, body)
}

// publicMessage drops the wrapped sentinel suffix, keeping the caller's reason.
func publicMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrConflict, ErrNotFound} {
		if errors.Is(err, sentinel) {
			msg = strings.TrimSuffix(msg, ": "+sentinel.Error())
		}
	}
	return msg
}
