package domain

import "errors"

var (
	// ErrInvalidInput marks a non-positive, non-finite or otherwise out of
	// range parameter. Results returned alongside it are zeroed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPaymentTooLow marks a payment that does not cover the periodic
	// interest, so the loan would never be repaid.
	ErrPaymentTooLow = errors.New("payment too low to amortize loan")
)
