package config

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/on-the-ground/popprob_go/estimator"
	"github.com/on-the-ground/popprob_go/pure"
)

const (
	// probabilityCost approximates the bytes held by one memoized likelihood,
	// including the cache entry around it.
	probabilityCost = 128

	// bigIntAvgCost is the expected size of a cached factorial or Stirling
	// number; it only sizes the admission counters.
	bigIntAvgCost = 1024
)

// EstimatorOptions maps the config onto estimator options. The returned
// teardown releases cache resources and must be called once the estimator
// is no longer used.
func (c Config) EstimatorOptions(logger *zap.Logger) ([]estimator.Option, func(), error) {
	opts := []estimator.Option{
		estimator.WithLogger(logger),
		estimator.WithTolerance(c.Estimator.Tolerance),
		estimator.WithMaxPopulation(c.Estimator.MaxPopulation),
	}
	teardown := func() {}

	switch c.Cache.Kind {
	case CacheGeneration:
		opts = append(opts,
			estimator.WithFactorialTable(pure.NewTrie[*big.Int](c.Cache.MaxEntries)),
			estimator.WithStirlingTable(pure.NewTrie[*big.Int](c.Cache.MaxEntries)),
			estimator.WithProbabilityTable(pure.NewTrie[pure.Result[float64, error]](c.Cache.MaxEntries)),
		)
	case CacheRistretto:
		fac, err := pure.NewRistrettoTable(c.Cache.MaxCost, bigIntAvgCost, bigIntCost)
		if err != nil {
			return nil, nil, err
		}
		snsk, err := pure.NewRistrettoTable(c.Cache.MaxCost, bigIntAvgCost, bigIntCost)
		if err != nil {
			fac.Close()
			return nil, nil, err
		}
		prob, err := pure.NewRistrettoTable(c.Cache.MaxCost, probabilityCost, func(pure.Result[float64, error]) int64 {
			return probabilityCost
		})
		if err != nil {
			fac.Close()
			snsk.Close()
			return nil, nil, err
		}
		opts = append(opts,
			estimator.WithFactorialTable(fac),
			estimator.WithStirlingTable(snsk),
			estimator.WithProbabilityTable(prob),
		)
		teardown = func() {
			fac.Close()
			snsk.Close()
			prob.Close()
		}
	}
	return opts, teardown, nil
}

func bigIntCost(v *big.Int) int64 {
	return int64(len(v.Bits()))*8 + 32
}
