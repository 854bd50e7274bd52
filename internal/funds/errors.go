package funds

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrExcessiveFunds    = errors.New("excessive funds")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrUnknownTransfer   = errors.New("unknown transfer kind")
)
