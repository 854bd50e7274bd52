package contract

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/store"
	"github.com/eigerco/tribunal/internal/trial"
)

func instantiate(_ context.Context, deps Deps, _ Env, info MessageInfo, msg InstantiateMsg) (Response, error) {
	if _, err := deps.Store.Trial(); err == nil {
		return Response{}, fmt.Errorf("%w: trial already instantiated", ErrValidation)
	} else if !errors.Is(err, store.ErrTrialNotFound) {
		return Response{}, fmt.Errorf("load trial: %w", err)
	}
	if err := validateInstantiate(msg); err != nil {
		return Response{}, err
	}

	choices := make([]trial.Choice, len(msg.Choices))
	for i, text := range msg.Choices {
		choices[i] = trial.Choice{Text: text}
	}
	t := trial.Trial{
		Owner:   info.Sender,
		Prompt:  msg.Prompt,
		Choices: choices,
		Verdict: msg.Verdict,
		Status:  trial.Active,
		Token:   msg.Token,
		Price:   msg.Price,
		Style:   msg.Style,
	}

	if err := deps.Store.SaveContractInfo(store.ContractInfo{Contract: Name, Version: Version}); err != nil {
		return Response{}, err
	}
	if err := deps.Store.SaveTrial(t); err != nil {
		return Response{}, err
	}
	for _, p := range msg.Jury {
		err := deps.Store.SaveJuror(p.Address, trial.Juror{
			Address: p.Address,
			Name:    p.Name,
			URL:     p.URL,
			Pct:     p.Pct,
		})
		if err != nil {
			return Response{}, err
		}
	}

	return NewResponse("instantiate").
		AddAttribute("owner", info.Sender.String()).
		AddAttribute("jurors", fmt.Sprint(len(msg.Jury))), nil
}

// validateInstantiate rejects trials the engines could not settle. Juror
// shares may add up to less than 100; the rest goes to the voters.
func validateInstantiate(msg InstantiateMsg) error {
	if msg.Prompt == "" {
		return fmt.Errorf("%w: empty prompt", ErrValidation)
	}
	if len(msg.Choices) == 0 || uint64(len(msg.Choices)) > math.MaxUint32 {
		return fmt.Errorf("%w: need at least one choice", ErrValidation)
	}
	if len(msg.Jury) == 0 {
		return fmt.Errorf("%w: need at least one juror", ErrValidation)
	}
	if err := msg.Token.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := msg.Verdict.Language.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	seen := make(map[funds.Address]struct{}, len(msg.Jury))
	var pct uint
	for _, j := range msg.Jury {
		if err := j.Address.Validate(); err != nil {
			return fmt.Errorf("%w: juror: %w", ErrValidation, err)
		}
		if _, dup := seen[j.Address]; dup {
			return fmt.Errorf("%w: juror %s listed twice", ErrValidation, j.Address)
		}
		seen[j.Address] = struct{}{}
		pct += uint(j.Pct)
	}
	if pct > 100 {
		return fmt.Errorf("%w: juror shares add up to %d%%", ErrValidation, pct)
	}
	return nil
}
