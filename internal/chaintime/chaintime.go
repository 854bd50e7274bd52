// Package chaintime holds the host-provided block time. The contract never
// reads a wall clock itself; the host passes the current Timestamp with every
// call and the contract only compares it against stored deadlines.
package chaintime

import (
	"errors"
	"math"
	"time"
)

var now = time.Now

// ErrBeforeUnixEpoch is returned when converting a time before 1970-01-01.
var ErrBeforeUnixEpoch = errors.New("time is before the unix epoch")

// Timestamp is a block time in whole seconds since the unix epoch.
type Timestamp uint64

// Now returns the current wall clock as a Timestamp. Only hosts call this.
func Now() Timestamp {
	return Timestamp(now().Unix())
}

// FromTime converts a standard time.Time to a Timestamp
func FromTime(t time.Time) (Timestamp, error) {
	if t.Unix() < 0 {
		return 0, ErrBeforeUnixEpoch
	}
	return Timestamp(t.Unix()), nil
}

// ToTime converts a Timestamp to a standard time.Time in UTC
func (ts Timestamp) ToTime() time.Time {
	return time.Unix(int64(ts), 0).UTC()
}

// Seconds returns the raw number of seconds.
func (ts Timestamp) Seconds() uint64 {
	return uint64(ts)
}

// PlusSeconds returns ts+s, saturating at the maximum Timestamp.
func (ts Timestamp) PlusSeconds(s uint64) Timestamp {
	if uint64(ts) > math.MaxUint64-s {
		return Timestamp(math.MaxUint64)
	}
	return ts + Timestamp(s)
}

// PlusMinutes returns ts plus m minutes, saturating at the maximum Timestamp.
func (ts Timestamp) PlusMinutes(m uint32) Timestamp {
	return ts.PlusSeconds(60 * uint64(m))
}

// Before reports whether ts is strictly before u
func (ts Timestamp) Before(u Timestamp) bool {
	return ts < u
}

// After reports whether ts is strictly after u
func (ts Timestamp) After(u Timestamp) bool {
	return ts > u
}
