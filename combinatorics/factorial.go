package combinatorics

import (
	"math/big"

	"github.com/on-the-ground/popprob_go/pure"
)

var one = big.NewInt(1)

// FactorialCache memoizes n!.
type FactorialCache struct {
	table pure.Table[*big.Int]
}

// NewFactorialCache returns a cache backed by an unbounded table.
func NewFactorialCache() *FactorialCache {
	return NewFactorialCacheWithTable(pure.NewTrie[*big.Int](0))
}

// NewFactorialCacheWithTable returns a cache storing its values in table.
func NewFactorialCacheWithTable(table pure.Table[*big.Int]) *FactorialCache {
	return &FactorialCache{table: table}
}

// Factorial returns n!. Missing values are built by multiplying downward
// from n to the largest m < n already present, so every product is formed
// at most once while the table holds it. 0! is always present.
func (f *FactorialCache) Factorial(n uint32) *big.Int {
	if n == 0 {
		return one
	}
	if v, ok := f.table.Load([]uint32{n}); ok {
		return v
	}

	fac := new(big.Int).SetUint64(uint64(n))
	m := n - 1
	var base *big.Int
	factor := new(big.Int)
	for {
		if m == 0 {
			base = one
			break
		}
		if v, ok := f.table.Load([]uint32{m}); ok {
			base = v
			break
		}
		fac.Mul(fac, factor.SetUint64(uint64(m)))
		m--
	}
	fac.Mul(fac, base)
	f.table.Store([]uint32{n}, fac)
	return fac
}
