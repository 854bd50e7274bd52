package contract

import (
	"errors"

	"github.com/eigerco/tribunal/internal/funds"
)

// Every validation failure aborts the whole call: no state is written and no
// transfer instruction is returned.
var (
	ErrValidation           = errors.New("validation error")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrInsufficientFunds    = funds.ErrInsufficientFunds
	ErrExcessiveFunds       = funds.ErrExcessiveFunds
	ErrNotActive            = errors.New("trial is not active")
	ErrNotDeciding          = errors.New("trial is not in deliberations")
	ErrInvalidChoice        = errors.New("invalid choice")
	ErrDeliberationsExpired = errors.New("deliberations expired")
	ErrNotDecided           = errors.New("trial has no verdict")
	ErrHasClaimed           = errors.New("already claimed")
	ErrInvalidWeight        = errors.New("invalid weight")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrValidation, "ValidationError"},
	{ErrNotAuthorized, "NotAuthorized"},
	{ErrInsufficientFunds, "InsufficientFunds"},
	{ErrExcessiveFunds, "ExcessiveFunds"},
	{ErrNotActive, "NotActive"},
	{ErrNotDeciding, "NotDeciding"},
	{ErrInvalidChoice, "InvalidChoice"},
	{ErrDeliberationsExpired, "DeliberationsExpired"},
	{ErrNotDecided, "NotDecided"},
	{ErrHasClaimed, "HasClaimed"},
	{ErrInvalidWeight, "InvalidWeight"},
}

// Code maps err to the name hosts surface to callers. Anything outside the
// validation taxonomy is an infrastructure failure and maps to StorageError.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "StorageError"
}
