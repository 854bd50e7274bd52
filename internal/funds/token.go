package funds

import (
	"fmt"
	"unicode/utf8"

	"github.com/eigerco/tribunal/internal/safemath"
)

// Address identifies an account or contract on the host ledger. The host
// authenticates senders; the contract treats addresses as opaque strings.
type Address string

func (a Address) String() string { return string(a) }

// Validate rejects empty addresses and addresses that are not valid UTF-8,
// which would not survive a round trip through a stored record.
func (a Address) Validate() error {
	if a == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	if !utf8.ValidString(string(a)) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidAddress, string(a))
	}
	return nil
}

// Coin is an amount of a native denomination attached to a call.
type Coin struct {
	Denom  string           `json:"denom"`
	Amount safemath.Uint128 `json:"amount"`
}

// Token selects the asset a trial is funded with. Exactly one variant is set.
type Token struct {
	Native *NativeToken `json:"native,omitempty"`
	CW20   *CW20Token   `json:"cw20,omitempty"`
}

// NativeToken is a denomination of the host ledger's bank module.
type NativeToken struct {
	Denom string `json:"denom"`
}

// CW20Token is a fungible token contract.
type CW20Token struct {
	Address Address `json:"address"`
}

// NewNativeToken returns a Token for the native denomination denom.
func NewNativeToken(denom string) Token {
	return Token{Native: &NativeToken{Denom: denom}}
}

// NewCW20Token returns a Token for the token contract at addr.
func NewCW20Token(addr Address) Token {
	return Token{CW20: &CW20Token{Address: addr}}
}

// Validate checks that exactly one well-formed variant is set.
func (t Token) Validate() error {
	switch {
	case t.Native != nil && t.CW20 != nil:
		return fmt.Errorf("%w: both native and cw20 set", ErrInvalidToken)
	case t.Native != nil:
		if t.Native.Denom == "" || !utf8.ValidString(t.Native.Denom) {
			return fmt.Errorf("%w: denom %q", ErrInvalidToken, t.Native.Denom)
		}
	case t.CW20 != nil:
		if err := t.CW20.Address.Validate(); err != nil {
			return fmt.Errorf("%w: token address: %w", ErrInvalidToken, err)
		}
	default:
		return fmt.Errorf("%w: no variant set", ErrInvalidToken)
	}
	return nil
}

func (t Token) String() string {
	switch {
	case t.Native != nil:
		return "native:" + t.Native.Denom
	case t.CW20 != nil:
		return "cw20:" + string(t.CW20.Address)
	}
	return "unset"
}
