package errs

import (
	"net/http"
	"strconv"
)

// Codes used by errors that do not derive their code from the status text.
const (
	CodeDatabaseUnavailable = "DATABASE_UNAVAILABLE"
	CodeStoreError          = "STORE_ERROR"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// ConnectionUnavailableMessage is the body message when no database
// connection could be acquired.
const ConnectionUnavailableMessage = "Database connection failed"

func newHTTPError(status int, code, message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     code,
		Message:  message,
		Status:   status,
		Override: override,
		Detail:   message,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Optional extras:
//   - code: custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: field errors (validation errors)
//   - action: client instruction
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	e := newHTTPError(http.StatusBadRequest, formattedCode, message, override)
	e.Errors = errors
	e.Action = action
	return e
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return newHTTPError(http.StatusNotFound, formattedCode, message, override)
}

// NewTooManyRequestsError creates a 429 HTTPError asking the client to
// retry after retryAfter seconds.
func NewTooManyRequestsError(retryAfter int) *HTTPError {
	e := newHTTPError(
		http.StatusTooManyRequests,
		MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		"Rate limit exceeded",
		true,
	)
	e.Action = &Action{
		Type:    ActionTypeRetry,
		Message: "Slow down and retry the request later",
		Value:   strconv.Itoa(retryAfter),
	}
	return e
}

// NewInternalServerError creates a generic 500 HTTPError.
//
// The message is the status text, never the real internal error.
func NewInternalServerError() *HTTPError {
	return newHTTPError(
		http.StatusInternalServerError,
		MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		http.StatusText(http.StatusInternalServerError),
		false,
	)
}

// NewConnectionUnavailableError is returned when the connection provider
// could not hand out a connection at all.
func NewConnectionUnavailableError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, CodeDatabaseUnavailable, ConnectionUnavailableMessage, false)
}

// NewStoreError wraps a failed SQL execution. detail carries the store's
// own message; the global error handler hides it in production.
func NewStoreError(detail string) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, CodeStoreError, detail, false)
}

