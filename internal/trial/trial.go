// Package trial holds the records a trial is made of: the Trial aggregate,
// its choices, jurors and per-voter votes.
package trial

import (
	"github.com/eigerco/tribunal/internal/chaintime"
	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/safemath"
)

// Verdict describes how the jury reaches a decision.
type Verdict struct {
	Script   string              `json:"script"`
	Language Language            `json:"language"`
	Start    chaintime.Timestamp `json:"start"`
	// Duration of deliberations in minutes.
	Duration uint32 `json:"duration"`
}

// Deadline is the last instant at which jurors may decide.
func (v Verdict) Deadline() chaintime.Timestamp {
	return v.Start.PlusMinutes(v.Duration)
}

// Choice is one selectable outcome. Tally counts vote calls, Weight counts
// funded weight.
type Choice struct {
	Text   string `json:"text"`
	Tally  uint32 `json:"tally"`
	Weight uint32 `json:"weight"`
}

// Trial is the aggregate root of one voting and adjudication round.
type Trial struct {
	Owner   funds.Address    `json:"owner"`
	Prompt  string           `json:"prompt"`
	Choices []Choice         `json:"choices"`
	Verdict Verdict          `json:"verdict"`
	Status  Status           `json:"status"`
	Token   funds.Token      `json:"token"`
	Price   safemath.Uint128 `json:"price"`
	Style   Style            `json:"style"`
	// Weight always equals the sum of Choices[i].Weight.
	Weight uint32  `json:"weight"`
	Winner *uint32 `json:"winner,omitempty"`
}

func (t *Trial) IsActive() bool       { return t.Status == Active }
func (t *Trial) IsDeliberating() bool { return t.Status == Deliberating }
func (t *Trial) HasVerdict() bool     { return t.Status == HasVerdict }

// CanBeCanceled reports whether the owner may still dismiss the trial.
func (t *Trial) CanBeCanceled() bool {
	return t.Status == Active || t.Status == Deliberating
}

// Choice returns the choice at index i, or false when i is out of range.
func (t *Trial) Choice(i uint32) (*Choice, bool) {
	if uint64(i) >= uint64(len(t.Choices)) {
		return nil, false
	}
	return &t.Choices[i], true
}

// Advance moves an Active trial into deliberations once the verdict start
// time has been reached. It reports whether the status changed.
func (t *Trial) Advance(now chaintime.Timestamp) bool {
	if t.Status == Active && !now.Before(t.Verdict.Start) {
		t.Status = Deliberating
		return true
	}
	return false
}

// Stake returns price * weight, the total value held for the trial.
func (t *Trial) Stake() (safemath.Uint128, bool) {
	return t.Price.Mul64(uint64(t.Weight))
}

// Juror is a fixed-at-creation adjudicator.
type Juror struct {
	Address funds.Address `json:"address"`
	Name    string        `json:"name"`
	URL     *string       `json:"url,omitempty"`
	Choice  *uint32       `json:"choice,omitempty"`
	Logs    *string       `json:"logs,omitempty"`
	// Pct is the juror's reward share of the total stake, in percent.
	Pct uint8 `json:"pct"`
}

// HasDecided reports whether the juror submitted a choice.
func (j *Juror) HasDecided() bool {
	return j.Choice != nil
}

// Vote is the cumulative weight one wallet committed to one choice.
type Vote struct {
	Choice uint32 `json:"choice"`
	Weight uint32 `json:"weight"`
}
