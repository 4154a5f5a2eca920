package estimator

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// SizeProbability is one entry of a truncated posterior distribution.
type SizeProbability struct {
	Size        uint32
	Probability float64
}

// ProbPop returns the probability that the population has exactly `size`
// distinct values given the observation, under a flat prior. The
// normalizing mass is collected from a window around `size` that grows
// towards the more likely side until the latest addition is negligible
// relative to the total.
func (e *Estimator) ProbPop(sample, unique, size uint32) (p float64, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	log, done := e.startQuery("prob_pop",
		zap.Uint32("sample", sample), zap.Uint32("unique", unique), zap.Uint32("size", size))
	defer func() { done(err, zap.Float64("probability", p)) }()

	numerator, denominator, err := e.expand(log, sample, unique, size, nil)
	if err != nil {
		return 0, err
	}
	if denominator == 0 {
		return 0, nil
	}
	return numerator / denominator, nil
}

// Distribution returns the truncated posterior over population sizes
// around the most likely size, sorted by size. The probabilities sum to 1.
func (e *Estimator) Distribution(sample, unique uint32) (dist []SizeProbability, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	log, done := e.startQuery("distribution", zap.Uint32("sample", sample), zap.Uint32("unique", unique))
	defer func() { done(err, zap.Int("sizes", len(dist))) }()

	mode, err := e.pop(log, sample, unique)
	if err != nil {
		return nil, err
	}
	_, total, err := e.expand(log, sample, unique, mode, func(v point) {
		dist = append(dist, SizeProbability{Size: v.size, Probability: v.prob})
	})
	if err != nil {
		return nil, err
	}
	if total > 0 {
		for i := range dist {
			dist[i].Probability /= total
		}
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Size < dist[j].Size })
	return dist, nil
}

// expand grows a window of sizes around center, always stepping to the side
// whose next size is more likely, and returns the likelihood at center and
// the total likelihood of the window. Sizes below unique have likelihood 0,
// as do sizes past math.MaxUint32. visit, if set, receives every size added
// to the window.
func (e *Estimator) expand(
	log *zap.Logger,
	sample, unique, center uint32,
	visit func(point),
) (float64, float64, error) {
	if visit == nil {
		visit = func(point) {}
	}
	probAt := func(size int64) (float64, error) {
		if size < int64(unique) || size > math.MaxUint32 {
			return 0, nil
		}
		return e.probUnique(uint32(size), sample, unique)
	}

	numerator, err := e.probUnique(center, sample, unique)
	if err != nil {
		return 0, 0, err
	}
	visit(point{size: center, prob: numerator})

	denominator, latest := numerator, numerator
	lowSize, highSize := int64(center)-1, int64(center)+1
	lowProb, err := probAt(lowSize)
	if err != nil {
		return 0, 0, err
	}
	highProb, err := probAt(highSize)
	if err != nil {
		return 0, 0, err
	}

	for latest > e.tolerance*denominator {
		if lowProb > highProb {
			latest = lowProb
			denominator += lowProb
			visit(point{size: uint32(lowSize), prob: lowProb})
			lowSize--
			if lowProb, err = probAt(lowSize); err != nil {
				return 0, 0, err
			}
			continue
		}
		latest = highProb
		denominator += highProb
		if highProb > 0 {
			visit(point{size: uint32(highSize), prob: highProb})
		}
		highSize++
		if highProb, err = probAt(highSize); err != nil {
			return 0, 0, err
		}
	}
	log.Debug("window",
		zap.Int64("low", lowSize+1), zap.Int64("high", highSize-1), zap.Float64("mass", denominator))
	return numerator, denominator, nil
}
