// Package jury folds juror decisions into a single outcome and splits the
// jury's share of the stake.
package jury

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/internal/trial"
)

var ErrRewardsExceedStake = errors.New("juror rewards exceed total stake")

// Outcome is the state of a jury after folding over its members.
type Outcome uint8

const (
	// Undecided: at least one juror has not submitted yet.
	Undecided Outcome = iota
	// Unanimous: every juror submitted the same choice.
	Unanimous
	// Hung: two jurors disagree.
	Hung
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case Unanimous:
		return "verdict"
	case Hung:
		return "hung"
	}
	return "unknown"
}

// Deliberation is the result of Deliberate. Choice is only meaningful when
// Outcome is Unanimous.
type Deliberation struct {
	Outcome Outcome
	Choice  uint32
}

// Deliberate compares every juror's recorded choice with submitted, visiting
// jurors in ascending address order. Any recorded choice that differs hangs
// the jury, even while other jurors are still undecided. Otherwise the jury
// is Undecided until everyone has submitted.
func Deliberate(jurors []trial.Juror, submitted uint32) Deliberation {
	pending := false
	for _, j := range sorted(jurors) {
		if !j.HasDecided() {
			pending = true
			continue
		}
		if *j.Choice != submitted {
			return Deliberation{Outcome: Hung}
		}
	}
	if pending {
		return Deliberation{Outcome: Undecided}
	}
	return Deliberation{Outcome: Unanimous, Choice: submitted}
}

// Reward is what one juror receives on a verdict.
type Reward struct {
	Juror  funds.Address
	Amount safemath.Uint128
}

// Rewards computes pct * total / 100 per juror, truncating each share
// independently, and returns what is left for the voters. A zero total
// yields no rewards and an empty pool.
func Rewards(jurors []trial.Juror, total safemath.Uint128) ([]Reward, safemath.Uint128, error) {
	if total.IsZero() {
		return nil, safemath.Zero, nil
	}

	var (
		rewards = make([]Reward, 0, len(jurors))
		paid    safemath.Uint128
	)
	for _, j := range sorted(jurors) {
		share, ok := total.Mul64(uint64(j.Pct))
		if !ok {
			return nil, safemath.Zero, fmt.Errorf("reward for %s: %w", j.Address, safemath.ErrOverflow)
		}
		amount, err := share.Div64(100)
		if err != nil {
			return nil, safemath.Zero, err
		}
		if paid, ok = paid.Add(amount); !ok {
			return nil, safemath.Zero, fmt.Errorf("sum of rewards: %w", safemath.ErrOverflow)
		}
		rewards = append(rewards, Reward{Juror: j.Address, Amount: amount})
	}

	pool, ok := total.Sub(paid)
	if !ok {
		return nil, safemath.Zero, fmt.Errorf("%w: paid %s of %s", ErrRewardsExceedStake, paid, total)
	}
	return rewards, pool, nil
}

func sorted(jurors []trial.Juror) []trial.Juror {
	out := slices.Clone(jurors)
	slices.SortFunc(out, func(a, b trial.Juror) int {
		return cmp.Compare(a.Address, b.Address)
	})
	return out
}
