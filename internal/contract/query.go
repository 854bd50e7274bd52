package contract

import (
	"fmt"

	"github.com/eigerco/tribunal/internal/store"
)

// Query answers msg from committed state. It never writes; the trial status
// is reported as of env's block time.
func (c *Contract) Query(env Env, msg QueryMsg) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := store.New(c.kv)
	switch {
	case msg.GetTrial != nil:
		t, err := loadTrial(st, env)
		if err != nil {
			return nil, err
		}
		return GetTrialResponse{Trial: t}, nil
	case msg.GetJurors != nil:
		jurors, err := st.Jurors()
		if err != nil {
			return nil, fmt.Errorf("load jurors: %w", err)
		}
		return GetJurorsResponse{Jurors: jurors}, nil
	case msg.GetVote != nil:
		v, ok, err := st.Vote(msg.GetVote.Choice, msg.GetVote.Voter)
		if err != nil {
			return nil, fmt.Errorf("load vote: %w", err)
		}
		if !ok {
			return GetVoteResponse{}, nil
		}
		return GetVoteResponse{Vote: &v}, nil
	case msg.GetClaim != nil:
		claimed, err := st.HasClaimed(msg.GetClaim.Voter)
		if err != nil {
			return nil, fmt.Errorf("load claim: %w", err)
		}
		return GetClaimResponse{Claimed: claimed}, nil
	case msg.GetPool != nil:
		pool, ok, err := st.Pool()
		if err != nil {
			return nil, fmt.Errorf("load pool: %w", err)
		}
		if !ok {
			return GetPoolResponse{}, nil
		}
		return GetPoolResponse{Pool: &pool}, nil
	case msg.GetCancelReason != nil:
		reason, ok, err := st.CancelReason()
		if err != nil {
			return nil, fmt.Errorf("load cancel reason: %w", err)
		}
		if !ok {
			return GetCancelReasonResponse{}, nil
		}
		return GetCancelReasonResponse{Reason: &reason}, nil
	}
	return nil, fmt.Errorf("%w: empty query", ErrValidation)
}
