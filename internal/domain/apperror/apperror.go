// Package apperror carries the error kinds every layer reports and the HTTP
// boundary maps onto status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure
type Kind string

const (
	KindValidation            Kind = "ValidationError"
	KindMissingRequiredHeader Kind = "MissingRequiredHeader"
	KindNotFound              Kind = "NotFound"
	KindUpstreamRejected      Kind = "UpstreamRejected"
	KindUpstreamFailure       Kind = "UpstreamFailure"
	KindUnknown               Kind = "UnknownError"
)

// Issue is a single validation problem
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is a tagged application error
type Error struct {
	Kind    Kind
	Message string
	Issues  []Issue
	// UpstreamStatus is the status returned by the hotel API, if any
	UpstreamStatus int
	Err            error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a ValidationError with the given issues
func Validation(message string, issues ...Issue) *Error {
	return &Error{Kind: KindValidation, Message: message, Issues: issues}
}

// MissingHeader reports a required header that was neither sent nor configured
func MissingHeader(name string) *Error {
	return &Error{
		Kind:    KindMissingRequiredHeader,
		Message: fmt.Sprintf("missing required header: %s", name),
		Issues:  []Issue{{Path: name, Message: "header is required"}},
	}
}

// NotFound reports an absent resource
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Upstream classifies a non-2xx hotel API response
func Upstream(status int, err error) *Error {
	if status >= 400 && status < 500 {
		return &Error{Kind: KindUpstreamRejected, Message: "upstream rejected the request", UpstreamStatus: status, Err: err}
	}
	return &Error{Kind: KindUpstreamFailure, Message: "upstream request failed", UpstreamStatus: status, Err: err}
}

// UpstreamUnavailable wraps a transport level failure
func UpstreamUnavailable(err error) *Error {
	return &Error{Kind: KindUpstreamFailure, Message: "upstream request failed", Err: err}
}

// Unknown wraps anything that has no better classification
func Unknown(err error) *Error {
	return &Error{Kind: KindUnknown, Message: "internal error", Err: err}
}

// As extracts an *Error from err. Errors without a tag are reported as Unknown.
func As(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	return Unknown(err)
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Status maps an error onto the HTTP status the portal answers with
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindMissingRequiredHeader:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamRejected:
		if e.UpstreamStatus >= 400 && e.UpstreamStatus < 500 {
			return e.UpstreamStatus
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Public reports whether the message is safe to show to the caller
func (e *Error) Public() bool {
	return e.Status() < http.StatusInternalServerError && e.Kind != KindUpstreamRejected
}
