// Package estimator estimates the size of a finite population from a
// capture-recapture style observation.
//
// Drawing `sample` elements uniformly at random with replacement from a
// population of `size` distinct elements yields `unique` distinct values.
// The Estimator answers three questions about such an observation:
//
//   - ProbUnique: how likely is it to see exactly `unique` distinct values,
//     given `size`?
//   - ProbPop: how likely is the population to be exactly `size`, given the
//     observation (flat prior, normalized over a truncated window)?
//   - Pop: which `size` maximizes the likelihood of the observation?
//
// Distribution additionally returns the truncated posterior around Pop.
//
// All probabilities are computed exactly with math/big and converted to
// float64 only at the end. Factorials, Stirling numbers and likelihoods are
// memoized for the lifetime of the Estimator.
//
// Example:
//
//	est := estimator.New(estimator.WithLogger(logger))
//	size, err := est.Pop(100, 80)
package estimator
