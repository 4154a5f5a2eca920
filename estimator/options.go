package estimator

import (
	"math"
	"math/big"

	"github.com/on-the-ground/popprob_go/pure"
	"go.uber.org/zap"
)

// DefaultTolerance stops the window expansion of ProbPop once the latest
// added mass falls below 1/10000 of the accumulated mass.
const DefaultTolerance = 1e-4

type options struct {
	logger           *zap.Logger
	tolerance        float64
	maxPopulation    uint32
	factorialTable   pure.Table[*big.Int]
	stirlingTable    pure.Table[*big.Int]
	probabilityTable pure.Table[pure.Result[float64, error]]
}

// Option configures an Estimator built by New.
type Option func(*options)

// WithLogger sets the logger queries are reported to. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTolerance sets the stopping ratio of the ProbPop window. Values
// outside (0, 1) are ignored.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance > 0 && tolerance < 1 {
			o.tolerance = tolerance
		}
	}
}

// WithMaxPopulation caps the candidate sizes Pop scans before giving up
// with ErrSearchExhausted. Zero keeps the default of math.MaxUint32.
func WithMaxPopulation(limit uint32) Option {
	return func(o *options) {
		if limit > 0 {
			o.maxPopulation = limit
		}
	}
}

// WithFactorialTable backs the factorial cache with table.
func WithFactorialTable(table pure.Table[*big.Int]) Option {
	return func(o *options) {
		o.factorialTable = table
	}
}

// WithStirlingTable backs the Stirling number cache with table.
func WithStirlingTable(table pure.Table[*big.Int]) Option {
	return func(o *options) {
		o.stirlingTable = table
	}
}

// WithProbabilityTable backs the memoized likelihoods with table.
func WithProbabilityTable(table pure.Table[pure.Result[float64, error]]) Option {
	return func(o *options) {
		o.probabilityTable = table
	}
}

func newOptions(opts ...Option) options {
	o := options{
		logger:        zap.NewNop(),
		tolerance:     DefaultTolerance,
		maxPopulation: math.MaxUint32,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.factorialTable == nil {
		o.factorialTable = pure.NewTrie[*big.Int](0)
	}
	if o.stirlingTable == nil {
		o.stirlingTable = pure.NewTrie[*big.Int](0)
	}
	if o.probabilityTable == nil {
		o.probabilityTable = pure.NewTrie[pure.Result[float64, error]](0)
	}
	return o
}
