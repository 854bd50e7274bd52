package store

import (
	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/trial"
)

func voteKey(choice uint32, voter funds.Address) []byte {
	return makeKey(prefixVote, choiceKey(choice, []byte(voter)))
}

// SaveVote stores voter's cumulative vote on choice.
func (s *Store) SaveVote(choice uint32, voter funds.Address, v trial.Vote) error {
	return s.put(voteKey(choice, voter), v)
}

// Vote loads voter's vote on choice and reports whether one exists.
func (s *Store) Vote(choice uint32, voter funds.Address) (trial.Vote, bool, error) {
	var v trial.Vote
	ok, err := s.get(voteKey(choice, voter), &v)
	return v, ok, err
}

// VoterWeight sums voter's weight over the first n choices.
func (s *Store) VoterWeight(n int, voter funds.Address) (uint64, error) {
	var total uint64
	for i := 0; i < n; i++ {
		v, ok, err := s.Vote(uint32(i), voter)
		if err != nil {
			return 0, err
		}
		if ok {
			total += uint64(v.Weight)
		}
	}
	return total, nil
}
