package combinatorics

import (
	"fmt"
	"math/big"

	"github.com/on-the-ground/popprob_go/pure"
)

var zero = big.NewInt(0)

type pair [2]uint32

// StirlingCache memoizes Stirling numbers of the second kind, S(n, k): the
// number of ways to partition n labeled items into k non-empty unlabeled
// groups.
type StirlingCache struct {
	table pure.Table[*big.Int]
}

// NewStirlingCache returns a cache backed by an unbounded table.
func NewStirlingCache() *StirlingCache {
	return NewStirlingCacheWithTable(pure.NewTrie[*big.Int](0))
}

// NewStirlingCacheWithTable returns a cache storing its values in table.
func NewStirlingCacheWithTable(table pure.Table[*big.Int]) *StirlingCache {
	return &StirlingCache{table: table}
}

// Stirling returns S(n, k) or ErrKGreaterThanN when k > n.
//
// For 1 < k < n it resolves S(n, k) = S(n-1, k-1) + k*S(n-1, k) with an
// explicit work stack. Every value produced on the way is stored in the
// table, and also in a scratch map local to the call so the resolution
// terminates even if the table evicts what was just stored.
func (s *StirlingCache) Stirling(n, k uint32) (*big.Int, error) {
	if k > n {
		return nil, fmt.Errorf("%w (k = %d, n = %d)", ErrKGreaterThanN, k, n)
	}
	if v, ok := closedForm(n, k); ok {
		return v, nil
	}
	target := pair{n, k}
	if v, ok := s.table.Load(target[:]); ok {
		return v, nil
	}

	scratch := make(map[pair]*big.Int)
	lookup := func(p pair) (*big.Int, bool) {
		if v, ok := closedForm(p[0], p[1]); ok {
			return v, true
		}
		if v, ok := scratch[p]; ok {
			return v, true
		}
		if v, ok := s.table.Load(p[:]); ok {
			scratch[p] = v
			return v, true
		}
		return nil, false
	}

	stack := []pair{target}
	factor := new(big.Int)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if _, ok := lookup(top); ok {
			stack = stack[:len(stack)-1]
			continue
		}

		joined := pair{top[0] - 1, top[1] - 1}
		shared := pair{top[0] - 1, top[1]}
		left, okLeft := lookup(joined)
		right, okRight := lookup(shared)
		if okLeft && okRight {
			v := new(big.Int).Mul(right, factor.SetUint64(uint64(top[1])))
			v.Add(v, left)
			scratch[top] = v
			s.table.Store(top[:], v)
			stack = stack[:len(stack)-1]
			continue
		}
		if !okLeft {
			stack = append(stack, joined)
		}
		if !okRight {
			stack = append(stack, shared)
		}
	}
	return scratch[target], nil
}

// closedForm answers the base cases k == 0, k == 1 and k == n.
func closedForm(n, k uint32) (*big.Int, bool) {
	switch {
	case k == 0 && n == 0:
		return one, true
	case k == 0:
		return zero, true
	case k == 1, k == n:
		return one, true
	}
	return nil, false
}
