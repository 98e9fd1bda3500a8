package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when the targeted row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrCreateFailed is returned when the repository yields no entity on insert.
	ErrCreateFailed = errors.New("failed to create record")
	// ErrUpdateFailed is returned when a committed update touched an unexpected row count.
	ErrUpdateFailed = errors.New("record update did not apply")
	// ErrDonationNotFound is returned when a donation-scoped operation references a missing campaign.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrInvalidCredentials is returned on failed login; it deliberately does not
	// distinguish an unknown user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameRequired is returned when the username is empty after trimming.
	ErrUsernameRequired = errors.New("username is required")
	// ErrUsernameTaken is returned when registration hits an existing username.
	ErrUsernameTaken = errors.New("username already taken")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDonationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DONATION_NOT_FOUND")
	case errors.Is(err, ErrCreateFailed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CREATE_FAILED")
	case errors.Is(err, ErrUpdateFailed):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "UPDATE_FAILED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUsernameRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_REQUIRED")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
