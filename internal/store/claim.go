package store

import "github.com/eigerco/tribunal/internal/funds"

// MarkClaimed records that addr withdrew its settlement. The flag is never
// cleared.
func (s *Store) MarkClaimed(addr funds.Address) error {
	return s.put(makeKey(prefixClaimed, []byte(addr)), true)
}

// HasClaimed reports whether addr already withdrew its settlement.
func (s *Store) HasClaimed(addr funds.Address) (bool, error) {
	var claimed bool
	ok, err := s.get(makeKey(prefixClaimed, []byte(addr)), &claimed)
	return ok && claimed, err
}
