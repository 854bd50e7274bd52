package funds

import (
	"fmt"

	"github.com/eigerco/tribunal/internal/safemath"
)

// TransferKind tells the host which mechanism moves the value.
type TransferKind uint8

const (
	// BankSend moves native coins.
	BankSend TransferKind = iota + 1
	// TokenTransfer moves tokens owned by the contract.
	TokenTransfer
	// TokenTransferFrom moves tokens from an owner who granted the contract an
	// allowance.
	TokenTransferFrom
)

func (k TransferKind) String() string {
	switch k {
	case BankSend:
		return "bank_send"
	case TokenTransfer:
		return "token_transfer"
	case TokenTransferFrom:
		return "token_transfer_from"
	}
	return "unknown"
}

func (k TransferKind) MarshalText() ([]byte, error) {
	if k < BankSend || k > TokenTransferFrom {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTransfer, k)
	}
	return []byte(k.String()), nil
}

func (k *TransferKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "bank_send":
		*k = BankSend
	case "token_transfer":
		*k = TokenTransfer
	case "token_transfer_from":
		*k = TokenTransferFrom
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransfer, b)
	}
	return nil
}

// Transfer is an instruction returned to the host. It only executes if the
// whole call commits.
type Transfer struct {
	Kind   TransferKind     `json:"kind"`
	Denom  string           `json:"denom,omitempty"`
	Token  Address          `json:"token,omitempty"`
	From   Address          `json:"from"`
	To     Address          `json:"to"`
	Amount safemath.Uint128 `json:"amount"`
}
