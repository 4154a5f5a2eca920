package estimator

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/popprob_go/combinatorics"
	"github.com/on-the-ground/popprob_go/pure"
)

// Estimator owns the factorial, Stirling and likelihood caches shared by
// all of its queries. It is safe for concurrent use; queries are
// serialized.
type Estimator struct {
	mu            sync.Mutex
	fac           *combinatorics.FactorialCache
	snsk          *combinatorics.StirlingCache
	probUnique    func(size, sample, unique uint32) (float64, error)
	logger        *zap.Logger
	tolerance     float64
	maxPopulation uint32
}

// New returns an Estimator with empty caches, configured by opts.
func New(opts ...Option) *Estimator {
	o := newOptions(opts...)
	e := &Estimator{
		fac:           combinatorics.NewFactorialCacheWithTable(o.factorialTable),
		snsk:          combinatorics.NewStirlingCacheWithTable(o.stirlingTable),
		logger:        o.logger,
		tolerance:     o.tolerance,
		maxPopulation: o.maxPopulation,
	}
	e.probUnique = pure.TableizeI3O2(e.calcProbUnique, o.probabilityTable)
	return e
}

// Factorial returns n! from the Estimator's cache. The result is shared and
// must not be modified.
func (e *Estimator) Factorial(n uint32) *big.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fac.Factorial(n)
}

// Stirling returns S(n, k) from the Estimator's cache. The result is shared
// and must not be modified.
func (e *Estimator) Stirling(n, k uint32) (*big.Int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snsk.Stirling(n, k)
}

// ProbUnique returns the probability that exactly `unique` distinct values
// appear when `sample` values are drawn with replacement from a population
// of exactly `size` distinct values.
func (e *Estimator) ProbUnique(size, sample, unique uint32) (p float64, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, done := e.startQuery("prob_unique",
		zap.Uint32("size", size), zap.Uint32("sample", sample), zap.Uint32("unique", unique))
	defer func() { done(err, zap.Float64("probability", p)) }()

	return e.probUnique(size, sample, unique)
}

// calcProbUnique evaluates
//
//	S(sample, unique) * size! / (size^sample * (size-unique)!)
//
// exactly and rounds the ratio to the nearest float64.
func (e *Estimator) calcProbUnique(size, sample, unique uint32) (float64, error) {
	if unique > size {
		return 0, fmt.Errorf("%w (unique = %d, size = %d)", ErrUniqueGreaterThanSize, unique, size)
	}
	if unique > sample {
		return 0, fmt.Errorf("%w (unique = %d, sample = %d)", ErrUniqueGreaterThanSample, unique, sample)
	}
	if unique == 0 {
		return 0, ErrUniqueZero
	}

	snsk, err := e.snsk.Stirling(sample, unique)
	if err != nil {
		return 0, err
	}
	numerator := new(big.Int).Mul(snsk, e.fac.Factorial(size))

	denominator := new(big.Int).Exp(
		new(big.Int).SetUint64(uint64(size)),
		new(big.Int).SetUint64(uint64(sample)),
		nil,
	)
	denominator.Mul(denominator, e.fac.Factorial(size-unique))

	p, _ := new(big.Rat).SetFrac(numerator, denominator).Float64()
	return p, nil
}

// startQuery tags a query with an id and returns a logger for it together
// with a callback that logs the outcome and the time span it took.
func (e *Estimator) startQuery(op string, fields ...zap.Field) (*zap.Logger, func(error, ...zap.Field)) {
	log := e.logger.With(append(fields,
		zap.String("op", op),
		zap.String("query_id", uuid.New().String()),
	)...)
	start := time.Now()
	return log, func(err error, result ...zap.Field) {
		span := timespan.BetweenTimes(start, time.Now())
		if err != nil {
			log.Debug("query failed", zap.Error(err), zap.Duration("elapsed", span.Duration()))
			return
		}
		log.Debug("query done", append(result, zap.Duration("elapsed", span.Duration()))...)
	}
}
