package trial

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown status")

// Status is the lifecycle phase of a Trial.
type Status uint8

const (
	// Active trials accept votes.
	Active Status = iota + 1
	// Deliberating trials wait for the jury.
	Deliberating
	// HasVerdict trials have a unanimous winner and pay prizes.
	HasVerdict
	// HungJury trials ended in disagreement and refund voters.
	HungJury
	// Dismissed trials were canceled by the owner and refund voters.
	Dismissed
)

var statusNames = map[Status]string{
	Active:       "active",
	Deliberating: "deliberating",
	HasVerdict:   "has_verdict",
	HungJury:     "hung_jury",
	Dismissed:    "dismissed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, s)
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for status, name := range statusNames {
		if name == string(b) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStatus, b)
}

// Refundable reports whether voters get their stake back in this status.
func (s Status) Refundable() bool {
	return s == Dismissed || s == HungJury
}
