package booking

import "errors"

var (
	ErrSessionPast       = errors.New("session already occurred")
	ErrSessionFull       = errors.New("session at capacity")
	ErrCheckoutNotFound  = errors.New("checkout not found or expired")
	ErrPaymentNotEnabled = errors.New("professional does not collect payments")
	ErrNotPending        = errors.New("booking is not pending approval")
)
