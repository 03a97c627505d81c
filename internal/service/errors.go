package service

import "errors"

var (
	// ErrInvalidInput is returned when a caller passes a negative amount,
	// negative view count or malformed tier configuration
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentPayment is returned when a persisted record claims to be
	// paid but carries no frozen amount (or vice versa). The value is never
	// guessed; the record must be repaired by an operator.
	ErrInconsistentPayment = errors.New("inconsistent payment state")

	// ErrPaymentStateConflict is returned when a freeze or unfreeze write
	// finds the record's paid flag already changed by a concurrent request
	ErrPaymentStateConflict = errors.New("payment state changed concurrently")
)
