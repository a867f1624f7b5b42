package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the core domain. Handlers map these to HTTP statuses
// with errors.Is; nothing is ever inferred from error strings.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate indicates an attempt to create a resource that already exists,
	// e.g. registering with an email that is already taken.
	ErrDuplicate = errors.New("resource already exists")

	// ErrInvalidCredentials is returned on failed login. It deliberately does not
	// distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden indicates the authenticated client does not own the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrCreditLimitExceeded indicates a new charge would push the account past
	// its credit limit. Surfaced verbatim so the client can register a payment first.
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")

	// ErrInvalidTransition indicates an order status change that moves backward
	// or skips a required intermediate state.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrOrderTerminal indicates the order is already delivered or cancelled and
	// accepts no further transitions.
	ErrOrderTerminal = errors.New("order is in a terminal state")

	// ErrInvalidAmount indicates a non-positive payment amount.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// AppError carries an HTTP-ish status code alongside a message and an optional
// wrapped cause. Used mainly by repositories for infrastructure failures.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError creates a 400 AppError with no underlying cause.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewInternalError creates a 500 AppError wrapping an underlying cause.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: err}
}
