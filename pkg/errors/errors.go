// Package errors provides common, reusable error values and helpers.
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTermsNotAccepted   = errors.New("terms of service not accepted")

	// Catalog errors
	ErrNetworkNotFound  = errors.New("network not found")
	ErrPlanNotFound     = errors.New("data plan not found")
	ErrProviderNotFound = errors.New("utility provider not found")
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrContactNotFound  = errors.New("contact not found")

	// Flow/session errors
	ErrFlowNotFound        = errors.New("flow not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrValidationFailed    = errors.New("validation failed")
	ErrInvalidStep         = errors.New("operation not allowed in current step")
	ErrSettlementInFlight  = errors.New("settlement already in progress")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Wallet errors
	ErrRateNotAvailable = errors.New("exchange rate not available")
	ErrInvalidAmount    = errors.New("invalid amount")

	// Transport errors
	ErrDuplicateRequest = errors.New("duplicate request")
)

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
