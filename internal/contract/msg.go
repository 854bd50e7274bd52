package contract

import (
	"fmt"

	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/internal/trial"
)

// JurorParams registers one juror at instantiation.
type JurorParams struct {
	Address funds.Address `json:"address"`
	Name    string        `json:"name"`
	URL     *string       `json:"url,omitempty"`
	Pct     uint8         `json:"pct"`
}

type InstantiateMsg struct {
	Prompt  string           `json:"prompt"`
	Choices []string         `json:"choices"`
	Verdict trial.Verdict    `json:"verdict"`
	Token   funds.Token      `json:"token"`
	Price   safemath.Uint128 `json:"price"`
	Style   trial.Style      `json:"style"`
	Jury    []JurorParams    `json:"jury"`
}

// ExecuteMsg is a tagged union; exactly one field is set.
type ExecuteMsg struct {
	Vote   *VoteMsg   `json:"vote,omitempty"`
	Decide *DecideMsg `json:"decide,omitempty"`
	Cancel *CancelMsg `json:"cancel,omitempty"`
	Claim  *ClaimMsg  `json:"claim,omitempty"`
}

type VoteMsg struct {
	Choice uint32 `json:"choice"`
	Weight uint32 `json:"weight"`
}

type DecideMsg struct {
	Choice uint32 `json:"choice"`
	Logs   string `json:"logs"`
}

type CancelMsg struct {
	Reason string `json:"reason,omitempty"`
}

type ClaimMsg struct{}

func (m ExecuteMsg) kind() (string, error) {
	var kinds []string
	if m.Vote != nil {
		kinds = append(kinds, "vote")
	}
	if m.Decide != nil {
		kinds = append(kinds, "decide")
	}
	if m.Cancel != nil {
		kinds = append(kinds, "cancel")
	}
	if m.Claim != nil {
		kinds = append(kinds, "claim")
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("%w: execute message must set exactly one variant, got %v", ErrValidation, kinds)
	}
	return kinds[0], nil
}

// QueryMsg is a tagged union; exactly one field is set.
type QueryMsg struct {
	GetTrial        *GetTrialQuery        `json:"get_trial,omitempty"`
	GetJurors       *GetJurorsQuery       `json:"get_jurors,omitempty"`
	GetVote         *GetVoteQuery         `json:"get_vote,omitempty"`
	GetClaim        *GetClaimQuery        `json:"get_claim,omitempty"`
	GetPool         *GetPoolQuery         `json:"get_pool,omitempty"`
	GetCancelReason *GetCancelReasonQuery `json:"get_cancel_reason,omitempty"`
}

type GetTrialQuery struct{}
type GetJurorsQuery struct{}
type GetPoolQuery struct{}
type GetCancelReasonQuery struct{}

type GetVoteQuery struct {
	Choice uint32        `json:"choice"`
	Voter  funds.Address `json:"voter"`
}

type GetClaimQuery struct {
	Voter funds.Address `json:"voter"`
}

type GetTrialResponse struct {
	Trial trial.Trial `json:"trial"`
}

type GetJurorsResponse struct {
	Jurors []trial.Juror `json:"jurors"`
}

type GetVoteResponse struct {
	Vote *trial.Vote `json:"vote"`
}

type GetClaimResponse struct {
	Claimed bool `json:"claimed"`
}

type GetPoolResponse struct {
	Pool *safemath.Uint128 `json:"pool"`
}

type GetCancelReasonResponse struct {
	Reason *string `json:"reason"`
}
