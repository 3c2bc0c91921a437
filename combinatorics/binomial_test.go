package combinatorics_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplace/combinatorics"
)

// bigBinomial is the exact reference used to check the uint64 accumulator.
func bigBinomial(n, k int64) *big.Int {
	return new(big.Int).Binomial(n, k)
}

// TestBinomial_ExactUpTo60 compares every C(n,k), n ≤ 60, with math/big.
func TestBinomial_ExactUpTo60(t *testing.T) {
	var n, k int64
	for n = 0; n <= 60; n++ {
		for k = 0; k <= n; k++ {
			want := bigBinomial(n, k)
			require.True(t, want.IsUint64(), "C(%d,%d) must fit in uint64", n, k)
			assert.Equal(t, want.Uint64(), combinatorics.Binomial(uint64(n), uint64(k)), "C(%d,%d)", n, k)
		}
	}
}

// TestBinomial_OverflowReturnsZero checks that the guard fires exactly when
// one of the intermediate coefficients C(n, i), i ≤ k, no longer fits in
// 64 bits. The largest of them is C(n, min(k, n/2)).
func TestBinomial_OverflowReturnsZero(t *testing.T) {
	var n, k int64
	for n = 61; n <= 80; n++ {
		for k = 0; k <= n; k++ {
			peak := bigBinomial(n, min(k, n/2))
			got := combinatorics.Binomial(uint64(n), uint64(k))
			if peak.IsUint64() {
				assert.Equal(t, bigBinomial(n, k).Uint64(), got, "C(%d,%d) fits and must be exact", n, k)
			} else {
				assert.Zero(t, got, "C(%d,%d) passes through an overflow and must return 0", n, k)
			}
		}
	}

	assert.Zero(t, combinatorics.Binomial(68, 34), "C(68,34) > MaxUint64")
	assert.Zero(t, combinatorics.Binomial(100, 50))
	assert.Zero(t, combinatorics.Binomial(1000, 500))
}

// TestBinomial_NoSymmetricFold pins the k > n/2 cases: the loop runs all k
// steps, so a coefficient that fits is still 0 when the walk overflows.
func TestBinomial_NoSymmetricFold(t *testing.T) {
	assert.Equal(t, uint64(396704524216), combinatorics.Binomial(70, 10))
	assert.Zero(t, combinatorics.Binomial(70, 60))
	assert.Equal(t, uint64(4950), combinatorics.Binomial(100, 2))
	assert.Zero(t, combinatorics.Binomial(100, 98))
	assert.Equal(t, uint64(1), combinatorics.Binomial(40, 40), "C(40,20) fits, so the walk completes")
}

// TestBinomial_LargestCentralFits pins C(64,32), which is below 2^64 and
// therefore returned exactly.
func TestBinomial_LargestCentralFits(t *testing.T) {
	assert.Equal(t, uint64(1832624140942590534), combinatorics.Binomial(64, 32))
	assert.Equal(t, bigBinomial(67, 33).Uint64(), combinatorics.Binomial(67, 33))
}

// TestBinomial_Degenerate covers k > n, k == 0 and k == n.
func TestBinomial_Degenerate(t *testing.T) {
	assert.Zero(t, combinatorics.Binomial(3, 4), "k > n")
	assert.Zero(t, combinatorics.Binomial(0, 1), "k > n with n == 0")
	assert.Equal(t, uint64(1), combinatorics.Binomial(0, 0))
	assert.Equal(t, uint64(1), combinatorics.Binomial(17, 0))
	assert.Equal(t, uint64(1), combinatorics.Binomial(17, 17))
	assert.Equal(t, uint64(math.MaxUint64), combinatorics.Binomial(math.MaxUint64, 1))
	assert.Zero(t, combinatorics.Binomial(math.MaxUint64, 2), "C(2^64-1, 2) overflows")
}
