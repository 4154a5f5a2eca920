package estimator

import (
	"fmt"

	"go.uber.org/zap"
)

type point struct {
	size uint32
	prob float64
}

// Pop returns the population size that maximizes ProbUnique(size, sample,
// unique).
//
// Candidate sizes unique + 2^(i-1) - 1 are scanned until the likelihood
// strictly decreases, which brackets the mode; the bracket is then narrowed
// by findPeak. The likelihood is assumed unimodal in size. If no decrease is
// seen before the candidates exceed the configured maximum population,
// ErrSearchExhausted is returned.
func (e *Estimator) Pop(sample, unique uint32) (size uint32, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	log, done := e.startQuery("pop", zap.Uint32("sample", sample), zap.Uint32("unique", unique))
	defer func() { done(err, zap.Uint32("size", size)) }()

	return e.pop(log, sample, unique)
}

func (e *Estimator) pop(log *zap.Logger, sample, unique uint32) (uint32, error) {
	// Every draw distinct: the likelihood only grows with size.
	if unique != 0 && unique == sample {
		return 0, fmt.Errorf("%w: every draw was unique (sample = %d)", ErrSearchExhausted, sample)
	}

	var prevPrev, prev point
	seen := 0
	for i := uint(0); ; i++ {
		candidate := uint64(unique) + (uint64(1) << i) - 1
		if candidate > uint64(e.maxPopulation) {
			return 0, fmt.Errorf("%w: likelihood still rising at size %d (max population = %d)",
				ErrSearchExhausted, prev.size, e.maxPopulation)
		}

		v, err := e.evaluate(log, uint32(candidate), sample, unique)
		if err != nil {
			return 0, err
		}
		if seen > 0 && v.prob < prev.prob {
			if seen == 1 {
				return prev.size, nil
			}
			return e.findPeak(log, sample, unique, prevPrev, prev, v)
		}
		prevPrev, prev = prev, v
		seen++
	}
}

// findPeak narrows the bracket lower < pivot < upper, where the likelihood
// at pivot is at least that at either end, by evaluating the midpoint of
// the wider half until upper is adjacent to pivot.
func (e *Estimator) findPeak(log *zap.Logger, sample, unique uint32, lower, pivot, upper point) (uint32, error) {
	for upper.size != pivot.size+1 {
		if upper.size-pivot.size > pivot.size-lower.size {
			v, err := e.evaluate(log, pivot.size+(upper.size-pivot.size)/2, sample, unique)
			if err != nil {
				return 0, err
			}
			if v.prob < pivot.prob {
				upper = v
			} else {
				lower, pivot = pivot, v
			}
		} else {
			v, err := e.evaluate(log, lower.size+(pivot.size-lower.size)/2, sample, unique)
			if err != nil {
				return 0, err
			}
			if pivot.prob < v.prob {
				pivot, upper = v, pivot
			} else {
				lower = v
			}
		}
	}
	return pivot.size, nil
}

func (e *Estimator) evaluate(log *zap.Logger, size, sample, unique uint32) (point, error) {
	p, err := e.probUnique(size, sample, unique)
	if err != nil {
		return point{}, err
	}
	log.Debug("likelihood", zap.Uint32("candidate", size), zap.Float64("probability", p))
	return point{size: size, prob: p}, nil
}
