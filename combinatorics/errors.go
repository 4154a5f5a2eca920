package combinatorics

import "errors"

// ErrKGreaterThanN is returned by Stirling when asked for S(n, k) with k > n.
var ErrKGreaterThanN = errors.New("k cannot be greater than n")
