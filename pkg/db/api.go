package db

// KVStore represents a key-value storage interface providing basic operations
// for data manipulation and iteration.
type KVStore interface {
	Reader
	Writer
	NewBatch() Batch
	Close() error
}

// Reader is the read side shared by stores and batches.
type Reader interface {
	Get(key []byte) ([]byte, error)
	NewIterator(start, end []byte) (Iterator, error)
}

type Writer interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
}

// Batch represents an atomic batch of operations.
// All operations in a batch are performed atomically. Reads through a batch
// observe its own pending writes layered over the committed state.
type Batch interface {
	Reader
	Writer
	Commit() error
	Close() error
}

// Iterator provides sequential access over a range of key-value pairs in
// ascending key order. Iterators must be closed after use.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() ([]byte, error)
	Valid() bool
	Close() error
}
