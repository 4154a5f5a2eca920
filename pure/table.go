package pure

// Table is a memo table keyed by a path of uint32 values.
//
// Implementations may drop entries at any time; a miss only means the
// caller has to compute the value again.
type Table[V any] interface {
	Load(keys []uint32) (V, bool)
	Store(keys []uint32, value V)
}

var (
	_ Table[int] = (*Trie[int])(nil)
	_ Table[int] = (*RistrettoTable[int])(nil)
)
