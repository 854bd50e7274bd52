package funds

import (
	"context"
	"fmt"

	"github.com/eigerco/tribunal/internal/safemath"
)

// Querier answers token contract queries on behalf of the host.
type Querier interface {
	TokenBalance(ctx context.Context, token, owner Address) (safemath.Uint128, error)
	TokenAllowance(ctx context.Context, token, owner, spender Address) (safemath.Uint128, error)
}

// Payment describes value a caller must bring into the contract.
type Payment struct {
	Payer    Address
	Attached []Coin
	Amount   safemath.Uint128
}

// Asset verifies incoming payments and builds transfer instructions for one
// funding token. Engines only ever talk to an Asset, never to a Token variant.
type Asset interface {
	// VerifyPayment fails with ErrInsufficientFunds or ErrExcessiveFunds when
	// the payer cannot cover p.Amount exactly.
	VerifyPayment(ctx context.Context, p Payment) error
	// Collect moves amount from payer into the contract.
	Collect(payer Address, amount safemath.Uint128) Transfer
	// Issue pays amount out of the contract to recipient.
	Issue(recipient Address, amount safemath.Uint128) Transfer
}

// NewAsset returns the Asset for t held by the contract at self.
func NewAsset(t Token, self Address, q Querier) (Asset, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Native != nil {
		return &nativeAsset{denom: t.Native.Denom, self: self}, nil
	}
	return &cw20Asset{token: t.CW20.Address, self: self, querier: q}, nil
}

type nativeAsset struct {
	denom string
	self  Address
}

// VerifyPayment requires the attached coin of the trial denom to match the
// amount exactly. Coins of other denominations would be stranded, so a
// non-zero foreign coin counts as excessive.
func (a *nativeAsset) VerifyPayment(_ context.Context, p Payment) error {
	var (
		found    bool
		attached safemath.Uint128
	)
	for _, c := range p.Attached {
		if c.Denom != a.denom {
			if !c.Amount.IsZero() {
				return fmt.Errorf("%w: unexpected %s", ErrExcessiveFunds, c.Denom)
			}
			continue
		}
		if found {
			return fmt.Errorf("%w: duplicate %s coin", ErrExcessiveFunds, a.denom)
		}
		found, attached = true, c.Amount
	}
	if !found {
		return fmt.Errorf("%w: no %s attached", ErrInsufficientFunds, a.denom)
	}
	switch attached.Cmp(p.Amount) {
	case -1:
		return fmt.Errorf("%w: attached %s%s, required %s%s", ErrInsufficientFunds, attached, a.denom, p.Amount, a.denom)
	case 1:
		return fmt.Errorf("%w: attached %s%s, required %s%s", ErrExcessiveFunds, attached, a.denom, p.Amount, a.denom)
	}
	return nil
}

func (a *nativeAsset) Collect(payer Address, amount safemath.Uint128) Transfer {
	return Transfer{Kind: BankSend, Denom: a.denom, From: payer, To: a.self, Amount: amount}
}

func (a *nativeAsset) Issue(recipient Address, amount safemath.Uint128) Transfer {
	return Transfer{Kind: BankSend, Denom: a.denom, From: a.self, To: recipient, Amount: amount}
}

type cw20Asset struct {
	token   Address
	self    Address
	querier Querier
}

// VerifyPayment checks the payer's balance and the allowance granted to the
// contract; the tokens themselves move with the Collect instruction.
func (a *cw20Asset) VerifyPayment(ctx context.Context, p Payment) error {
	if a.querier == nil {
		return fmt.Errorf("%w: no token querier configured", ErrInvalidToken)
	}
	balance, err := a.querier.TokenBalance(ctx, a.token, p.Payer)
	if err != nil {
		return fmt.Errorf("query cw20 balance: %w", err)
	}
	if balance.Less(p.Amount) {
		return fmt.Errorf("%w: balance %s, required %s", ErrInsufficientFunds, balance, p.Amount)
	}
	allowance, err := a.querier.TokenAllowance(ctx, a.token, p.Payer, a.self)
	if err != nil {
		return fmt.Errorf("query cw20 allowance: %w", err)
	}
	if allowance.Less(p.Amount) {
		return fmt.Errorf("%w: allowance %s, required %s", ErrInsufficientFunds, allowance, p.Amount)
	}
	return nil
}

func (a *cw20Asset) Collect(payer Address, amount safemath.Uint128) Transfer {
	return Transfer{Kind: TokenTransferFrom, Token: a.token, From: payer, To: a.self, Amount: amount}
}

func (a *cw20Asset) Issue(recipient Address, amount safemath.Uint128) Transfer {
	return Transfer{Kind: TokenTransfer, Token: a.token, From: a.self, To: recipient, Amount: amount}
}
