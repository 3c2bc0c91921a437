package combinatorics

import "math"

// Binomial returns the binomial coefficient C(n, k).
//
// Algorithm:
//  1. c = 1
//  2. For i = 1..k (n decreasing alongside):
//     c = c*n/i, evaluated as c/i*n + c%i*n/i so that the product
//     never leaves the accumulator before the division.
//
// After step i the accumulator holds C(n, i). Before each step the guard
// c/i > MaxUint64/n is checked; if it holds the next value cannot be
// represented and Binomial returns 0. k is not folded to n−k, so C(n, k)
// is 0 whenever any C(n, i), i ≤ k, overflows, even if C(n, k) itself fits
// (C(70, 60) is 0, C(70, 10) is exact). The same 0 is returned for k > n.
// Zero is never a legal coefficient inside the domain, so callers treat it
// as "not representable" and take their fallback path.
//
// Complexity: O(k) time, O(1) space.
func Binomial(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	var (
		c      uint64 = 1
		i      uint64
		hi, lo uint64
	)
	for i = 1; i <= k; i, n = i+1, n-1 {
		if c/i > math.MaxUint64/n || c%i > math.MaxUint64/n {
			return 0
		}
		hi, lo = c/i*n, c%i*n/i
		if hi > math.MaxUint64-lo {
			return 0
		}
		c = hi + lo
	}

	return c
}
