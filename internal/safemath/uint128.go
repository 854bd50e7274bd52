package safemath

import (
	"encoding/json"
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidUint128 = errors.New("invalid uint128 literal")
)

// Uint128 is an unsigned 128-bit amount. The zero value is 0. Unlike the
// underlying type, every operation reports overflow instead of panicking.
type Uint128 struct {
	v uint128.Uint128
}

var (
	Zero       = Uint128{}
	MaxUint128 = Uint128{v: uint128.Max}
)

// New returns the Uint128 holding v.
func New(v uint64) Uint128 {
	return Uint128{v: uint128.From64(v)}
}

// FromWords returns hi*2^64 + lo.
func FromWords(hi, lo uint64) Uint128 {
	return Uint128{v: uint128.New(lo, hi)}
}

func (u Uint128) IsZero() bool {
	return u.v.IsZero()
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to or
// greater than v.
func (u Uint128) Cmp(v Uint128) int {
	return u.v.Cmp(v.v)
}

func (u Uint128) Equal(v Uint128) bool { return u.v.Equals(v.v) }
func (u Uint128) Less(v Uint128) bool  { return u.Cmp(v) < 0 }

// Add returns u+v, reporting false on overflow.
func (u Uint128) Add(v Uint128) (Uint128, bool) {
	sum := u.v.AddWrap(v.v)
	if sum.Cmp(u.v) < 0 {
		return Uint128{}, false
	}
	return Uint128{v: sum}, true
}

// Sub returns u-v, reporting false on underflow.
func (u Uint128) Sub(v Uint128) (Uint128, bool) {
	if u.v.Cmp(v.v) < 0 {
		return Uint128{}, false
	}
	return Uint128{v: u.v.SubWrap(v.v)}, true
}

// Mul returns u*v, reporting false on overflow.
func (u Uint128) Mul(v Uint128) (Uint128, bool) {
	if v.v.IsZero() {
		return Zero, true
	}
	p := u.v.MulWrap(v.v)
	if !p.Div(v.v).Equals(u.v) {
		return Uint128{}, false
	}
	return Uint128{v: p}, true
}

// Mul64 returns u*v, reporting false on overflow.
func (u Uint128) Mul64(v uint64) (Uint128, bool) {
	return u.Mul(New(v))
}

// QuoRem64 returns the truncated quotient u/v and the remainder.
func (u Uint128) QuoRem64(v uint64) (Uint128, uint64, error) {
	if v == 0 {
		return Uint128{}, 0, ErrDivisionByZero
	}
	q, r := u.v.QuoRem64(v)
	return Uint128{v: q}, r, nil
}

// Div64 returns the truncated quotient u/v.
func (u Uint128) Div64(v uint64) (Uint128, error) {
	q, _, err := u.QuoRem64(v)
	return q, err
}

// String renders u in base 10.
func (u Uint128) String() string {
	return u.v.String()
}

// Parse reads a base 10 literal made of digits only.
func Parse(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, ErrInvalidUint128
	}
	var u Uint128
	for _, c := range s {
		if c < '0' || c > '9' {
			return Uint128{}, fmt.Errorf("%w: %q", ErrInvalidUint128, s)
		}
		var ok bool
		if u, ok = u.Mul64(10); !ok {
			return Uint128{}, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		if u, ok = u.Add(New(uint64(c - '0'))); !ok {
			return Uint128{}, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
	}
	return u, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Uint128 {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// MarshalJSON encodes u as a decimal string so that values above 2^53 survive
// JSON consumers.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUint128, data)
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
