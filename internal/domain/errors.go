package domain

import "errors"

var (
	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidType         = errors.New("invalid transaction type")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Storage errors
	ErrMalformedPayload = errors.New("malformed persisted payload")
)
