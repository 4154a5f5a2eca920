package combinatorics_test

import (
	"math/big"
	"testing"

	"github.com/on-the-ground/popprob_go/combinatorics"
)

func naiveStirling(n, k int64) *big.Int {
	switch {
	case k == 0 && n == 0:
		return big.NewInt(1)
	case k == 0 || k > n:
		return big.NewInt(0)
	case k == 1 || k == n:
		return big.NewInt(1)
	}
	v := new(big.Int).Mul(big.NewInt(k), naiveStirling(n-1, k))
	return v.Add(v, naiveStirling(n-1, k-1))
}

func BenchmarkNaiveStirling20_10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveStirling(20, 10)
	}
}

func BenchmarkCachedStirling20_10(b *testing.B) {
	snsk := combinatorics.NewStirlingCache()
	for i := 0; i < b.N; i++ {
		_, _ = snsk.Stirling(20, 10)
	}
}

func BenchmarkColdStirling200_100(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = combinatorics.NewStirlingCache().Stirling(200, 100)
	}
}

func BenchmarkFactorialAscending(b *testing.B) {
	for i := 0; i < b.N; i++ {
		fac := combinatorics.NewFactorialCache()
		for n := uint32(0); n <= 1000; n += 10 {
			_ = fac.Factorial(n)
		}
	}
}
