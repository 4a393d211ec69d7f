package errors

import (
	"errors"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrAccountLocked        = errors.New("account locked")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidTokenType     = errors.New("invalid token type")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrUsernameAlreadyInUse = errors.New("username already in use")
	ErrResendExhausted      = errors.New("unlock code already resent")
	ErrValidationFailed     = errors.New("validation failed")
)

// Stable machine-readable codes returned in HTTP error payloads.
const (
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeAccountLocked        = "ACCOUNT_LOCKED"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeInvalidTokenType     = "INVALID_TOKEN_TYPE"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeInternal             = "INTERNAL_ERROR"
)

// Code maps a service error to its wire code. Unknown errors map to
// INTERNAL_ERROR so no detail leaks to the caller.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrAuthenticationFailed):
		return CodeAuthenticationFailed
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	case errors.Is(err, ErrInvalidTokenType):
		return CodeInvalidTokenType
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrEmailAlreadyInUse),
		errors.Is(err, ErrUsernameAlreadyInUse),
		errors.Is(err, ErrResendExhausted),
		errors.Is(err, ErrValidationFailed):
		return CodeValidationFailed
	default:
		return CodeInternal
	}
}
