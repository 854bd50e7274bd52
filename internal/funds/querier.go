package funds

import (
	"context"
	"sync"

	"github.com/eigerco/tribunal/internal/safemath"
)

// LedgerQuerier is an in-process Querier over fixed token balances and
// allowances, for hosts without a live token contract.
type LedgerQuerier struct {
	mu         sync.RWMutex
	balances   map[Address]map[Address]safemath.Uint128
	allowances map[Address]map[[2]Address]safemath.Uint128
}

func NewLedgerQuerier() *LedgerQuerier {
	return &LedgerQuerier{
		balances:   make(map[Address]map[Address]safemath.Uint128),
		allowances: make(map[Address]map[[2]Address]safemath.Uint128),
	}
}

// SetBalance records owner's balance of token.
func (l *LedgerQuerier) SetBalance(token, owner Address, amount safemath.Uint128) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[token] == nil {
		l.balances[token] = make(map[Address]safemath.Uint128)
	}
	l.balances[token][owner] = amount
}

// SetAllowance records how much of owner's token spender may move.
func (l *LedgerQuerier) SetAllowance(token, owner, spender Address, amount safemath.Uint128) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[token] == nil {
		l.allowances[token] = make(map[[2]Address]safemath.Uint128)
	}
	l.allowances[token][[2]Address{owner, spender}] = amount
}

func (l *LedgerQuerier) TokenBalance(_ context.Context, token, owner Address) (safemath.Uint128, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[token][owner], nil
}

func (l *LedgerQuerier) TokenAllowance(_ context.Context, token, owner, spender Address) (safemath.Uint128, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.allowances[token][[2]Address{owner, spender}], nil
}
