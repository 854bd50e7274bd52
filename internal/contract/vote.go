package contract

import (
	"context"
	"fmt"

	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/internal/trial"
)

func vote(ctx context.Context, deps Deps, env Env, info MessageInfo, msg VoteMsg) (Response, error) {
	t, err := loadTrial(deps.Store, env)
	if err != nil {
		return Response{}, err
	}
	if !t.IsActive() {
		return Response{}, fmt.Errorf("%w: status is %s", ErrNotActive, t.Status)
	}
	if msg.Weight == 0 {
		return Response{}, ErrInvalidWeight
	}
	choice, ok := t.Choice(msg.Choice)
	if !ok {
		return Response{}, fmt.Errorf("%w: %d of %d", ErrInvalidChoice, msg.Choice, len(t.Choices))
	}

	payment, ok := t.Price.Mul64(uint64(msg.Weight))
	if !ok {
		return Response{}, fmt.Errorf("%w: payment: %w", ErrValidation, safemath.ErrOverflow)
	}
	asset, err := assetFor(deps, env, t)
	if err != nil {
		return Response{}, err
	}
	err = asset.VerifyPayment(ctx, funds.Payment{Payer: info.Sender, Attached: info.Funds, Amount: payment})
	if err != nil {
		return Response{}, err
	}

	prev, _, err := deps.Store.Vote(msg.Choice, info.Sender)
	if err != nil {
		return Response{}, fmt.Errorf("load vote: %w", err)
	}
	next := trial.Vote{Choice: msg.Choice}
	if next.Weight, ok = safemath.Add32(prev.Weight, msg.Weight); !ok {
		return Response{}, fmt.Errorf("%w: vote weight: %w", ErrValidation, safemath.ErrOverflow)
	}
	if choice.Tally, ok = safemath.Add32(choice.Tally, 1); !ok {
		return Response{}, fmt.Errorf("%w: choice tally: %w", ErrValidation, safemath.ErrOverflow)
	}
	if choice.Weight, ok = safemath.Add32(choice.Weight, msg.Weight); !ok {
		return Response{}, fmt.Errorf("%w: choice weight: %w", ErrValidation, safemath.ErrOverflow)
	}
	if t.Weight, ok = safemath.Add32(t.Weight, msg.Weight); !ok {
		return Response{}, fmt.Errorf("%w: trial weight: %w", ErrValidation, safemath.ErrOverflow)
	}

	if err := deps.Store.SaveVote(msg.Choice, info.Sender, next); err != nil {
		return Response{}, err
	}
	if err := deps.Store.SaveTrial(t); err != nil {
		return Response{}, err
	}

	return NewResponse("vote").
		AddMessage(asset.Collect(info.Sender, payment)).
		AddAttribute("choice", fmt.Sprint(msg.Choice)).
		AddAttribute("weight", fmt.Sprint(msg.Weight)), nil
}
