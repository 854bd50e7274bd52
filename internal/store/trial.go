package store

import (
	"errors"

	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/internal/trial"
)

var (
	ErrTrialNotFound        = errors.New("trial not found")
	ErrContractInfoNotFound = errors.New("contract info not found")
)

// ContractInfo names the code that owns the state, for migrations.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

func (s *Store) SaveContractInfo(info ContractInfo) error {
	return s.put([]byte{prefixContractInfo}, info)
}

func (s *Store) ContractInfo() (ContractInfo, error) {
	var info ContractInfo
	ok, err := s.get([]byte{prefixContractInfo}, &info)
	if err != nil {
		return ContractInfo{}, err
	}
	if !ok {
		return ContractInfo{}, ErrContractInfoNotFound
	}
	return info, nil
}

// SaveTrial overwrites the single trial record.
func (s *Store) SaveTrial(t trial.Trial) error {
	return s.put([]byte{prefixTrial}, t)
}

// Trial loads the trial, failing with ErrTrialNotFound before instantiation.
func (s *Store) Trial() (trial.Trial, error) {
	var t trial.Trial
	ok, err := s.get([]byte{prefixTrial}, &t)
	if err != nil {
		return trial.Trial{}, err
	}
	if !ok {
		return trial.Trial{}, ErrTrialNotFound
	}
	return t, nil
}

// SavePool records what remains of the stake for voters after the jury is paid.
func (s *Store) SavePool(amount safemath.Uint128) error {
	return s.put([]byte{prefixPool}, amount)
}

// Pool returns the voters' pool, or false if no verdict was reached yet.
func (s *Store) Pool() (safemath.Uint128, bool, error) {
	var amount safemath.Uint128
	ok, err := s.get([]byte{prefixPool}, &amount)
	return amount, ok, err
}

func (s *Store) SaveCancelReason(reason string) error {
	return s.put([]byte{prefixCancelReason}, reason)
}

// CancelReason returns the owner's reason for dismissing the trial, if any.
func (s *Store) CancelReason() (string, bool, error) {
	var reason string
	ok, err := s.get([]byte{prefixCancelReason}, &reason)
	return reason, ok, err
}
