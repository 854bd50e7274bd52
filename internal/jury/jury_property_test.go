package jury

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/internal/trial"
)

// TestUnanimityIsOrderIndependent checks that a jury whose members all chose
// the same option reaches that verdict whatever order they are listed in.
func TestUnanimityIsOrderIndependent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("same choice from every juror is unanimous", prop.ForAll(
		func(size int, choice uint32, rotate int) bool {
			jurors := make([]trial.Juror, size)
			for i := range jurors {
				jurors[i] = juror(fmt.Sprintf("juror%02d", i), 0, choice)
			}
			r := rotate % size
			jurors = append(jurors[r:], jurors[:r]...)

			got := Deliberate(jurors, choice)
			return got.Outcome == Unanimous && got.Choice == choice
		},
		gen.IntRange(1, 12),
		gen.UInt32Range(0, 8),
		gen.IntRange(0, 100),
	))

	properties.Property("any dissent among fully decided jurors hangs", prop.ForAll(
		func(size int, dissenter int, choice uint32) bool {
			jurors := make([]trial.Juror, size)
			for i := range jurors {
				jurors[i] = juror(fmt.Sprintf("juror%02d", i), 0, choice)
			}
			jurors[dissenter%size] = juror(fmt.Sprintf("juror%02d", dissenter%size), 0, choice+1)

			return Deliberate(jurors, choice).Outcome == Hung
		},
		gen.IntRange(2, 12),
		gen.IntRange(0, 100),
		gen.UInt32Range(0, 8),
	))

	properties.Property("dissent hangs whoever is still undecided", prop.ForAll(
		func(size int, dissenter int, undecided int, choice uint32) bool {
			jurors := make([]trial.Juror, size)
			for i := range jurors {
				jurors[i] = juror(fmt.Sprintf("juror%02d", i), 0, choice)
			}
			d, u := dissenter%size, undecided%size
			if d == u {
				u = (u + 1) % size
			}
			jurors[d] = juror(fmt.Sprintf("juror%02d", d), 0, choice+1)
			jurors[u] = juror(fmt.Sprintf("juror%02d", u), 0)

			return Deliberate(jurors, choice).Outcome == Hung
		},
		gen.IntRange(2, 12),
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
		gen.UInt32Range(0, 8),
	))

	properties.TestingRun(t)
}

// TestRewardsConserveStake checks rewards plus pool always equal the stake
// and that every reward is the independently truncated share.
func TestRewardsConserveStake(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("rewards + pool == total", prop.ForAll(
		func(pcts []uint8, total uint64) bool {
			var sum int
			jurors := make([]trial.Juror, 0, len(pcts))
			for i, p := range pcts {
				p %= 26
				sum += int(p)
				jurors = append(jurors, juror(fmt.Sprintf("juror%02d", i), p))
			}
			if sum > 100 {
				return true
			}

			rewards, pool, err := Rewards(jurors, safemath.New(total))
			if err != nil {
				return false
			}
			acc := pool
			for i, r := range rewards {
				want := uint64(jurors[i].Pct) * total / 100
				if total <= 1<<56 && r.Amount != safemath.New(want) {
					return false
				}
				acc, _ = acc.Add(r.Amount)
			}
			return acc == safemath.New(total)
		},
		gen.SliceOfN(4, gen.UInt8()),
		gen.UInt64Range(1, 1<<60),
	))

	properties.TestingRun(t)
}
