package parking

import "errors"

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrIllegalBookingTime = errors.New("illegal booking time")
	ErrIncompatibleSlot   = errors.New("slot not compatible")
)
