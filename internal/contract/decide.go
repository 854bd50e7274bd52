package contract

import (
	"context"
	"fmt"

	"github.com/eigerco/tribunal/internal/jury"
	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/internal/trial"
)

func decide(_ context.Context, deps Deps, env Env, info MessageInfo, msg DecideMsg) (Response, error) {
	t, err := loadTrial(deps.Store, env)
	if err != nil {
		return Response{}, err
	}
	juror, ok, err := deps.Store.Juror(info.Sender)
	if err != nil {
		return Response{}, fmt.Errorf("load juror: %w", err)
	}
	if !ok {
		return Response{}, fmt.Errorf("%w: %s is not a juror", ErrNotAuthorized, info.Sender)
	}
	if !t.IsDeliberating() {
		return Response{}, fmt.Errorf("%w: status is %s", ErrNotDeciding, t.Status)
	}
	if _, ok := t.Choice(msg.Choice); !ok {
		return Response{}, fmt.Errorf("%w: %d of %d", ErrInvalidChoice, msg.Choice, len(t.Choices))
	}
	if deadline := t.Verdict.Deadline(); env.Block.Time.After(deadline) {
		return Response{}, fmt.Errorf("%w: deadline was %d", ErrDeliberationsExpired, deadline.Seconds())
	}

	choice, logs := msg.Choice, msg.Logs
	juror.Choice, juror.Logs = &choice, &logs
	if err := deps.Store.SaveJuror(info.Sender, juror); err != nil {
		return Response{}, err
	}

	jurors, err := deps.Store.Jurors()
	if err != nil {
		return Response{}, fmt.Errorf("load jurors: %w", err)
	}
	d := jury.Deliberate(jurors, msg.Choice)

	resp := NewResponse("decide")
	switch d.Outcome {
	case jury.Hung:
		t.Status = trial.HungJury
	case jury.Unanimous:
		if resp, err = settle(deps, env, &t, jurors, d.Choice, resp); err != nil {
			return Response{}, err
		}
	}
	if err := deps.Store.SaveTrial(t); err != nil {
		return Response{}, err
	}
	return resp.AddAttribute("outcome", d.Outcome.String()), nil
}

// settle records the verdict, pays the jury and stores what is left for the
// winning voters.
func settle(deps Deps, env Env, t *trial.Trial, jurors []trial.Juror, winner uint32, resp Response) (Response, error) {
	t.Status = trial.HasVerdict
	t.Winner = &winner

	total, ok := t.Stake()
	if !ok {
		return Response{}, fmt.Errorf("%w: stake: %w", ErrValidation, safemath.ErrOverflow)
	}
	rewards, pool, err := jury.Rewards(jurors, total)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if len(rewards) > 0 {
		asset, err := assetFor(deps, env, *t)
		if err != nil {
			return Response{}, err
		}
		for _, r := range rewards {
			resp = resp.AddMessage(asset.Issue(r.Juror, r.Amount))
		}
	}
	if err := deps.Store.SavePool(pool); err != nil {
		return Response{}, err
	}
	return resp.AddAttribute("winner", fmt.Sprint(winner)), nil
}
