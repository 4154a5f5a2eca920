package pure

import (
	"sync"
)

type trieNode[V any] struct {
	children map[uint32]*trieNode[V]
	value    V
	ok       bool
}

func newTrieNode[V any]() *trieNode[V] {
	return &trieNode[V]{children: make(map[uint32]*trieNode[V])}
}

// Trie is a Table that keeps its entries in two generations of nested maps.
// With maxSize 0 it never evicts. Otherwise the head generation is rotated
// out once it holds maxSize entries, dropping whatever was left in the tail.
// A hit in the tail generation is promoted into the head.
type Trie[V any] struct {
	mu      sync.Mutex
	memos   [2]*trieNode[V]
	headIdx uint32
	size    uint32
	maxSize uint32
}

// NewTrie returns a Trie evicting by generations of maxSize entries, or
// never when maxSize is 0.
func NewTrie[V any](maxSize uint32) *Trie[V] {
	return &Trie[V]{
		memos:   [2]*trieNode[V]{newTrieNode[V](), newTrieNode[V]()},
		maxSize: maxSize,
	}
}

func (t *Trie[V]) Load(keys []uint32) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := t.find(t.memos[t.headIdx], keys); n != nil && n.ok {
		return n.value, true
	}
	if n := t.find(t.memos[1-t.headIdx], keys); n != nil && n.ok {
		t.store(keys, n.value)
		return n.value, true
	}
	var zero V
	return zero, false
}

func (t *Trie[V]) Store(keys []uint32, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.store(keys, value)
}

// Len reports the number of entries across both generations. Entries that
// were promoted are counted once per generation holding them.
func (t *Trie[V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return count(t.memos[0]) + count(t.memos[1])
}

func (t *Trie[V]) store(keys []uint32, value V) {
	if t.maxSize > 0 && t.size >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = newTrieNode[V]()
		t.size = 0
	}
	n := t.traverse(t.memos[t.headIdx], keys)
	if !n.ok {
		t.size++
	}
	n.value = value
	n.ok = true
}

func (t *Trie[V]) find(root *trieNode[V], keys []uint32) *trieNode[V] {
	n := root
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func (t *Trie[V]) traverse(root *trieNode[V], keys []uint32) *trieNode[V] {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}

	n := root
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			child = newTrieNode[V]()
			n.children[k] = child
		}
		n = child
	}
	return n
}

func count[V any](n *trieNode[V]) int {
	c := 0
	if n.ok {
		c++
	}
	for _, child := range n.children {
		c += count(child)
	}
	return c
}
