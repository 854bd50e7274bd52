package jury

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/internal/trial"
)

func juror(addr string, pct uint8, choice ...uint32) trial.Juror {
	j := trial.Juror{Address: funds.Address(addr), Name: addr, Pct: pct}
	if len(choice) > 0 {
		c := choice[0]
		j.Choice = &c
	}
	return j
}

func TestDeliberate(t *testing.T) {
	tests := []struct {
		name      string
		jurors    []trial.Juror
		submitted uint32
		want      Deliberation
	}{
		{
			name:      "single_juror_decides",
			jurors:    []trial.Juror{juror("a", 100, 1)},
			submitted: 1,
			want:      Deliberation{Outcome: Unanimous, Choice: 1},
		},
		{
			name:      "all_agree",
			jurors:    []trial.Juror{juror("a", 50, 0), juror("b", 50, 0)},
			submitted: 0,
			want:      Deliberation{Outcome: Unanimous, Choice: 0},
		},
		{
			name:      "someone_missing",
			jurors:    []trial.Juror{juror("a", 50, 0), juror("b", 50)},
			submitted: 0,
			want:      Deliberation{Outcome: Undecided},
		},
		{
			name:      "disagreement",
			jurors:    []trial.Juror{juror("a", 30, 0), juror("b", 30, 0), juror("c", 40, 1)},
			submitted: 1,
			want:      Deliberation{Outcome: Hung},
		},
		{
			// "a" is undecided and sorts before the disagreeing "c"
			name:      "disagreement_hangs_despite_undecided_juror",
			jurors:    []trial.Juror{juror("c", 40, 1), juror("b", 30, 0), juror("a", 30)},
			submitted: 0,
			want:      Deliberation{Outcome: Hung},
		},
		{
			name:      "disagreement_before_undecided_is_hung",
			jurors:    []trial.Juror{juror("c", 40), juror("b", 30, 2), juror("a", 30, 0)},
			submitted: 0,
			want:      Deliberation{Outcome: Hung},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Deliberate(tc.jurors, tc.submitted))
		})
	}
}

func TestDeliberateDoesNotReorderInput(t *testing.T) {
	jurors := []trial.Juror{juror("b", 50, 0), juror("a", 50, 0)}
	Deliberate(jurors, 0)
	assert.Equal(t, funds.Address("b"), jurors[0].Address)
}

func TestRewards(t *testing.T) {
	t.Run("exact_split_exhausts_stake", func(t *testing.T) {
		rewards, pool, err := Rewards([]trial.Juror{juror("b", 40), juror("a", 60)}, safemath.New(100))
		require.NoError(t, err)
		assert.Equal(t, []Reward{
			{Juror: "a", Amount: safemath.New(60)},
			{Juror: "b", Amount: safemath.New(40)},
		}, rewards)
		assert.True(t, pool.IsZero())
	})

	t.Run("each_share_truncates_independently", func(t *testing.T) {
		// 33% of 10 is 3.3 -> 3, three times; 1 unit is left for voters
		rewards, pool, err := Rewards([]trial.Juror{juror("a", 33), juror("b", 33), juror("c", 34)}, safemath.New(10))
		require.NoError(t, err)
		require.Len(t, rewards, 3)
		assert.Equal(t, safemath.New(3), rewards[0].Amount)
		assert.Equal(t, safemath.New(3), rewards[1].Amount)
		assert.Equal(t, safemath.New(3), rewards[2].Amount)
		assert.Equal(t, safemath.New(1), pool)
	})

	t.Run("partial_jury_share_leaves_pool", func(t *testing.T) {
		rewards, pool, err := Rewards([]trial.Juror{juror("a", 10)}, safemath.New(1000))
		require.NoError(t, err)
		assert.Equal(t, []Reward{{Juror: "a", Amount: safemath.New(100)}}, rewards)
		assert.Equal(t, safemath.New(900), pool)
	})

	t.Run("zero_total_pays_nothing", func(t *testing.T) {
		rewards, pool, err := Rewards([]trial.Juror{juror("a", 100)}, safemath.Zero)
		require.NoError(t, err)
		assert.Empty(t, rewards)
		assert.True(t, pool.IsZero())
	})

	t.Run("shares_above_hundred_percent", func(t *testing.T) {
		_, _, err := Rewards([]trial.Juror{juror("a", 80), juror("b", 80)}, safemath.New(100))
		assert.ErrorIs(t, err, ErrRewardsExceedStake)
	})

	t.Run("overflow", func(t *testing.T) {
		_, _, err := Rewards([]trial.Juror{juror("a", 100)}, safemath.MaxUint128)
		assert.ErrorIs(t, err, safemath.ErrOverflow)
	})
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "undecided", Undecided.String())
	assert.Equal(t, "verdict", Unanimous.String())
	assert.Equal(t, "hung", Hung.String())
}
