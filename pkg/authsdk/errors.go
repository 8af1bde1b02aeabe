package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/longevlabs/longev-auth/pkg/httpx"
)

// Error codes returned by the API.
const (
	ErrorCodeNotFound          = "not_found"
	ErrorCodeProfileInactive   = "profile_inactive"
	ErrorCodeIncorrectPassword = "incorrect_password"
	ErrorCodeIncorrectOTP      = "incorrect_otp"
	ErrorCodeEmailExists       = "email_exists"
	ErrorCodeValidationError   = "validation_error"
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeServerError       = "server_error"
)

// APIError is the JSON error envelope the service returns. It implements
// the error interface so the SDK client can surface it directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "incorrect_otp")
	Code string `json:"error"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   e.Code,
		"message": e.Message,
	})
}

var (
	// ErrUserNotFound is returned when no user exists for the supplied email.
	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "User with this email does not exist",
	}

	// ErrProfileInactive is returned when the account has been deactivated.
	ErrProfileInactive = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeProfileInactive,
		Message:    "User profile has been deactivated",
	}

	// ErrIncorrectPassword is returned when the password does not match.
	ErrIncorrectPassword = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeIncorrectPassword,
		Message:    "Provided password is incorrect",
	}

	// ErrIncorrectOTP is returned for an absent, wrong, or expired passcode.
	// The three causes deliberately share one message so callers cannot
	// probe whether a code exists for an account.
	ErrIncorrectOTP = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeIncorrectOTP,
		Message:    "Provided otp is incorrect",
	}

	// ErrEmailExists is returned when signing up with a taken email.
	ErrEmailExists = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeEmailExists,
		Message:    "Email already exists!",
	}

	// ErrInvalidJSONBody is returned when the request body cannot be parsed.
	ErrInvalidJSONBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "invalid JSON body",
	}

	// ErrInvalidToken is returned when the access token is missing or invalid.
	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidToken,
		Message:    "missing or invalid bearer token",
	}

	// ErrServerError is returned for unexpected conditions, including
	// store-layer failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// NewValidationError builds a 400 validation error with a specific message.
func NewValidationError(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidationError,
		Message:    message,
	}
}
