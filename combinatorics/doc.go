// Package combinatorics provides memoized arbitrary-precision factorials and
// Stirling numbers of the second kind.
//
// Both caches grow monotonically by default: once n! or S(n, k) has been
// computed it is never recomputed for the lifetime of the cache. A bounded
// pure.Table may be supplied instead, in which case evicted entries are
// recomputed on demand.
//
// Values are returned as shared *big.Int and must be treated as read-only.
package combinatorics
