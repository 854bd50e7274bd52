package store

import (
	"fmt"

	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/trial"
)

// SaveJuror stores j under addr, the address the juror is looked up by.
func (s *Store) SaveJuror(addr funds.Address, j trial.Juror) error {
	return s.put(makeKey(prefixJuror, []byte(addr)), j)
}

// Juror loads the juror registered under addr, reporting false for anyone
// who is not on the jury.
func (s *Store) Juror(addr funds.Address) (trial.Juror, bool, error) {
	var j trial.Juror
	ok, err := s.get(makeKey(prefixJuror, []byte(addr)), &j)
	return j, ok, err
}

// Jurors returns every juror in ascending address order.
func (s *Store) Jurors() ([]trial.Juror, error) {
	iter, err := s.rw.NewIterator([]byte{prefixJuror}, []byte{prefixJuror + 1})
	if err != nil {
		return nil, fmt.Errorf("create iterator: %w", err)
	}
	defer iter.Close() //nolint:errcheck

	var jurors []trial.Juror
	for iter.Next() {
		b, err := iter.Value()
		if err != nil {
			return nil, fmt.Errorf("read juror value from iterator: %w", err)
		}
		var j trial.Juror
		if err := s.ser.Decode(b, &j); err != nil {
			return nil, fmt.Errorf("unmarshal juror %q: %w", iter.Key()[1:], err)
		}
		jurors = append(jurors, j)
	}
	return jurors, nil
}
