package estimator_test

import (
	"testing"

	"github.com/on-the-ground/popprob_go/estimator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbPop_KnownValues(t *testing.T) {
	est := newTestEstimator(t)
	for _, tc := range []struct {
		sample, unique, size uint32
		expected             float64
	}{
		{10, 5, 5, 0.2217898369427503},
		{20, 10, 12, 0.16641232449662277},
		{50, 30, 43, 0.05701877907528895},
		{4, 2, 2, 0.28650122323643956},
		{10, 1, 1, 0.9980000774419133},
	} {
		p, err := est.ProbPop(tc.sample, tc.unique, tc.size)
		require.NoError(t, err)
		assert.InDelta(t, tc.expected, p, 1e-9, "sample=%d unique=%d size=%d", tc.sample, tc.unique, tc.size)
	}
}

func TestProbPop_Bounds(t *testing.T) {
	est := newTestEstimator(t)
	for size := uint32(30); size <= 80; size += 5 {
		p, err := est.ProbPop(50, 30, size)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestProbPop_TighterToleranceKeepsLeadingDigits(t *testing.T) {
	coarse := newTestEstimator(t)
	fine := newTestEstimator(t, estimator.WithTolerance(1e-7))

	for _, size := range []uint32{35, 43, 45, 60} {
		c, err := coarse.ProbPop(50, 30, size)
		require.NoError(t, err)
		f, err := fine.ProbPop(50, 30, size)
		require.NoError(t, err)
		assert.InDelta(t, f, c, 1e-3, "size=%d", size)

		again, err := coarse.ProbPop(50, 30, size)
		require.NoError(t, err)
		assert.Equal(t, c, again)
	}
}

func TestProbPop_Errors(t *testing.T) {
	est := newTestEstimator(t)

	_, err := est.ProbPop(10, 5, 4)
	assert.ErrorIs(t, err, estimator.ErrUniqueGreaterThanSize)

	_, err = est.ProbPop(4, 5, 10)
	assert.ErrorIs(t, err, estimator.ErrUniqueGreaterThanSample)

	_, err = est.ProbPop(4, 0, 10)
	assert.ErrorIs(t, err, estimator.ErrUniqueZero)
}

func TestDistribution(t *testing.T) {
	est := newTestEstimator(t)

	dist, err := est.Distribution(50, 30)
	require.NoError(t, err)
	require.NotEmpty(t, dist)

	total := 0.0
	best := dist[0]
	for i, sp := range dist {
		total += sp.Probability
		assert.GreaterOrEqual(t, sp.Size, uint32(30))
		if i > 0 {
			assert.Equal(t, dist[i-1].Size+1, sp.Size, "window is contiguous")
		}
		if sp.Probability > best.Probability {
			best = sp
		}
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Equal(t, uint32(43), best.Size)

	p, err := est.ProbPop(50, 30, 43)
	require.NoError(t, err)
	assert.InDelta(t, p, best.Probability, 1e-12)
}

func TestDistribution_Errors(t *testing.T) {
	est := newTestEstimator(t)

	_, err := est.Distribution(9, 9)
	assert.ErrorIs(t, err, estimator.ErrSearchExhausted)

	_, err = est.Distribution(9, 0)
	assert.ErrorIs(t, err, estimator.ErrUniqueZero)
}
