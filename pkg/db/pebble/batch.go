package pebble

import (
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"github.com/eigerco/tribunal/pkg/db"
)

// Batch is an indexed pebble batch: reads see its uncommitted writes.
type Batch struct {
	store *KVStore
	batch *pebble.Batch
	done  atomic.Bool
}

func (p *KVStore) NewBatch() db.Batch {
	return &Batch{
		store: p,
		batch: p.db.NewIndexedBatch(),
	}
}

func (b *Batch) Get(key []byte) ([]byte, error) {
	if b.done.Load() {
		return nil, ErrBatchDone
	}
	return get(b.batch, key)
}

func (b *Batch) NewIterator(start, end []byte) (db.Iterator, error) {
	if b.done.Load() {
		return nil, ErrBatchDone
	}
	return newIterator(b.batch, start, end)
}

func (b *Batch) Put(key, value []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	return b.batch.Set(key, value, nil)
}

func (b *Batch) Delete(key []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	return b.batch.Delete(key, nil)
}

func (b *Batch) Commit() error {
	if b.done.Load() {
		return ErrBatchDone
	}

	b.store.mu.RLock()
	defer b.store.mu.RUnlock()
	if b.store.closed {
		return ErrClosed
	}

	if err := b.batch.Commit(pebble.Sync); err != nil {
		return err
	}
	b.done.Store(true)
	return b.batch.Close()
}

// Close discards the batch if it has not been committed.
func (b *Batch) Close() error {
	if !b.done.CompareAndSwap(false, true) {
		return nil
	}
	return b.batch.Close()
}
