package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/on-the-ground/popprob_go/estimator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(sample, unique uint32) observation {
	return observation{Sample: sample, Unique: unique}
}

func TestRun(t *testing.T) {
	for name, tc := range map[string]struct {
		args     args
		expected string
	}{
		"pop": {
			args:     args{Pop: &popCmd{obs(50, 30)}},
			expected: "43\n",
		},
		"prob-unique": {
			args:     args{Digits: 4, ProbUnique: &probUniqueCmd{observation: obs(2, 2), Size: 4}},
			expected: "0.75\n",
		},
		"prob-pop": {
			args:     args{Digits: 3, ProbPop: &probPopCmd{observation: obs(10, 5), Size: 5}},
			expected: "0.222\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(&out, estimator.New(), tc.args))
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestRun_Dist(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, estimator.New(), args{Digits: 6, Dist: &distCmd{obs(20, 10)}}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Greater(t, len(lines), 5)
	assert.Contains(t, out.String(), "12\t")
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, estimator.New(), args{Pop: &popCmd{obs(5, 5)}})
	assert.ErrorIs(t, err, estimator.ErrSearchExhausted)

	err = run(&out, estimator.New(), args{})
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestFormatProbability(t *testing.T) {
	assert.Equal(t, "0.123", formatProbability(0.12345, 3))
	assert.Equal(t, "1", formatProbability(1, 2))
	assert.Equal(t, "1e-30", formatProbability(1e-30, 6))
}

func TestExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "popprob.yaml")
	require.NoError(t, os.WriteFile(path, []byte("config:\n  log:\n    level: error\n  cache:\n    kind: ristretto\n"), 0o600))

	var stdout, stderr bytes.Buffer
	code := execute(args{Config: path, Pop: &popCmd{obs(50, 30)}}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "43\n", stdout.String())

	stdout.Reset()
	code = execute(args{Config: path, Pop: &popCmd{obs(5, 5)}}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
}

func TestExecute_BadConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(args{Config: filepath.Join(t.TempDir(), "missing.yaml"), Pop: &popCmd{obs(50, 30)}}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to load config file")
	assert.Empty(t, stdout.String())
}
