package pure

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// conflictSalt separates the conflict hash from the primary hash of a key.
const conflictSalt = "\xffpopprob"

// RistrettoTable is a cost-bounded Table. Keys are encoded as big-endian
// strings and hashed with xxhash for both the bucket and the conflict hash.
type RistrettoTable[V any] struct {
	cache *ristretto.Cache[string, V]
	cost  func(V) int64
}

// NewRistrettoTable builds a table holding at most maxCost units as
// measured by cost. avgCost is the expected cost of one entry and sizes the
// admission counters. A nil cost charges 1 per entry.
func NewRistrettoTable[V any](maxCost, avgCost int64, cost func(V) int64) (*RistrettoTable[V], error) {
	if maxCost <= 0 {
		return nil, fmt.Errorf("max cost should be greater than 0, got %d", maxCost)
	}
	if avgCost <= 0 {
		return nil, fmt.Errorf("average cost should be greater than 0, got %d", avgCost)
	}
	if cost == nil {
		cost = func(V) int64 { return 1 }
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters:        numCounters(maxCost, avgCost),
		MaxCost:            maxCost,
		BufferItems:        64,
		KeyToHash:          keyToHash,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	return &RistrettoTable[V]{cache: cache, cost: cost}, nil
}

// numCounters tracks frequencies for ten times the number of entries that
// fit in maxCost, as recommended by ristretto.
func numCounters(maxCost, avgCost int64) int64 {
	return 10 * max(maxCost/avgCost, 1)
}

func (r *RistrettoTable[V]) Load(keys []uint32) (V, bool) {
	return r.cache.Get(encodeKeys(keys))
}

// Store waits for the write buffer to drain so the value is visible to the
// next Load, unless the admission policy rejected it.
func (r *RistrettoTable[V]) Store(keys []uint32, value V) {
	if r.cache.Set(encodeKeys(keys), value, r.cost(value)) {
		r.cache.Wait()
	}
}

// Close releases the goroutines and buffers of the underlying cache.
func (r *RistrettoTable[V]) Close() {
	r.cache.Close()
}

func encodeKeys(keys []uint32) string {
	buf := make([]byte, 4*len(keys))
	for i, k := range keys {
		binary.BigEndian.PutUint32(buf[4*i:], k)
	}
	return string(buf)
}

func keyToHash(key string) (uint64, uint64) {
	d := xxhash.New()
	_, _ = d.WriteString(key)
	_, _ = d.WriteString(conflictSalt)
	return xxhash.Sum64String(key), d.Sum64()
}
