package contract

import (
	"context"
	"fmt"

	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/internal/trial"
)

func claim(_ context.Context, deps Deps, env Env, info MessageInfo) (Response, error) {
	t, err := loadTrial(deps.Store, env)
	if err != nil {
		return Response{}, err
	}
	switch {
	case t.Status.Refundable():
		return refund(deps, env, t, info)
	case t.HasVerdict():
		return prize(deps, env, t, info)
	}
	return Response{}, fmt.Errorf("%w: status is %s", ErrNotDecided, t.Status)
}

// refund returns everything the caller staked on a trial that ended without
// a verdict.
func refund(deps Deps, env Env, t trial.Trial, info MessageInfo) (Response, error) {
	weight, err := deps.Store.VoterWeight(len(t.Choices), info.Sender)
	if err != nil {
		return Response{}, fmt.Errorf("load votes: %w", err)
	}
	if weight == 0 {
		return Response{}, fmt.Errorf("%w: %s has no votes", ErrNotAuthorized, info.Sender)
	}
	if err := markClaimed(deps, info); err != nil {
		return Response{}, err
	}

	amount, ok := t.Price.Mul64(weight)
	if !ok {
		return Response{}, fmt.Errorf("%w: refund: %w", ErrValidation, safemath.ErrOverflow)
	}
	return payout(deps, env, t, info, "refund", amount)
}

// prize pays the caller's share of the pool for backing the winning choice.
func prize(deps Deps, env Env, t trial.Trial, info MessageInfo) (Response, error) {
	if t.Winner == nil {
		return Response{}, fmt.Errorf("%w: no winner recorded", ErrNotDecided)
	}
	choice, ok := t.Choice(*t.Winner)
	if !ok {
		return Response{}, fmt.Errorf("%w: winner %d", ErrInvalidChoice, *t.Winner)
	}
	v, ok, err := deps.Store.Vote(*t.Winner, info.Sender)
	if err != nil {
		return Response{}, fmt.Errorf("load vote: %w", err)
	}
	if !ok {
		return Response{}, fmt.Errorf("%w: %s did not vote for the winner", ErrNotAuthorized, info.Sender)
	}
	if err := markClaimed(deps, info); err != nil {
		return Response{}, err
	}

	pool, _, err := deps.Store.Pool()
	if err != nil {
		return Response{}, fmt.Errorf("load pool: %w", err)
	}
	// The ratio is truncated before it scales the pool: only a voter holding
	// all of the winning weight receives a non-zero amount.
	var share uint32
	if choice.Weight > 0 {
		share = v.Weight / choice.Weight
	}
	amount, ok := pool.Mul64(uint64(share))
	if !ok {
		return Response{}, fmt.Errorf("%w: prize: %w", ErrValidation, safemath.ErrOverflow)
	}
	return payout(deps, env, t, info, "prize", amount)
}

func markClaimed(deps Deps, info MessageInfo) error {
	claimed, err := deps.Store.HasClaimed(info.Sender)
	if err != nil {
		return fmt.Errorf("load claim: %w", err)
	}
	if claimed {
		return fmt.Errorf("%w: %s", ErrHasClaimed, info.Sender)
	}
	return deps.Store.MarkClaimed(info.Sender)
}

func payout(deps Deps, env Env, t trial.Trial, info MessageInfo, kind string, amount safemath.Uint128) (Response, error) {
	asset, err := assetFor(deps, env, t)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("claim").
		AddMessage(asset.Issue(info.Sender, amount)).
		AddAttribute("type", kind).
		AddAttribute("amount", amount.String()), nil
}
