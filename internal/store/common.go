package store

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/eigerco/tribunal/pkg/db"
	"github.com/eigerco/tribunal/pkg/db/pebble"
	"github.com/eigerco/tribunal/pkg/log"
	"github.com/eigerco/tribunal/pkg/serialization"
	"github.com/eigerco/tribunal/pkg/serialization/codec"
)

// Prefix constants for all record types
const (
	prefixContractInfo byte = iota + 1
	prefixTrial
	prefixVote
	prefixJuror
	prefixClaimed
	prefixPool
	prefixCancelReason
)

// PrefixToString converts a prefix byte to a string
func PrefixToString(p byte) string {
	switch p {
	case prefixContractInfo:
		return "contract_info"
	case prefixTrial:
		return "trial"
	case prefixVote:
		return "vote"
	case prefixJuror:
		return "juror"
	case prefixClaimed:
		return "claimed"
	case prefixPool:
		return "pool"
	case prefixCancelReason:
		return "cancel_reason"
	default:
		return "unknown"
	}
}

// ReadWriter is satisfied by both db.KVStore and db.Batch, so the same Store
// works against committed state and inside a call's transaction.
type ReadWriter interface {
	db.Reader
	db.Writer
}

// Store is the typed view of one contract's persisted state.
type Store struct {
	rw  ReadWriter
	ser *serialization.Serializer
}

// New wraps rw. Pass a db.Batch to scope every read and write to one call.
func New(rw ReadWriter) *Store {
	return &Store{
		rw:  rw,
		ser: serialization.NewSerializer(codec.NewJSONCodec()),
	}
}

// makeKey creates a key from a prefix and an identifier
func makeKey(prefix byte, id []byte) []byte {
	key := make([]byte, 1+len(id))
	key[0] = prefix
	copy(key[1:], id)
	return key
}

func choiceKey(choice uint32, id []byte) []byte {
	key := make([]byte, 4+len(id))
	binary.BigEndian.PutUint32(key, choice)
	copy(key[4:], id)
	return key
}

func (s *Store) put(key []byte, v interface{}) error {
	b, err := s.ser.Encode(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", PrefixToString(key[0]), err)
	}
	if err := s.rw.Put(key, b); err != nil {
		return fmt.Errorf("store %s: %w", PrefixToString(key[0]), err)
	}
	log.Store.Trace().Str("record", PrefixToString(key[0])).Int("size", len(b)).Msg("put")
	return nil
}

// get decodes the record under key into v and reports whether it existed.
func (s *Store) get(key []byte, v interface{}) (bool, error) {
	b, err := s.rw.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", PrefixToString(key[0]), err)
	}
	if err := s.ser.Decode(b, v); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", PrefixToString(key[0]), err)
	}
	return true, nil
}
