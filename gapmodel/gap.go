package gapmodel

import "github.com/katalvlaran/multiplace/combinatorics"

// Floors that keep every connector score finite.
const (
	// NumeratorFloor is the smallest probability a Gaussian connector assigns
	// to a gap; it also stands in for gaps a Tabulated model does not cover.
	NumeratorFloor = 1e-5

	// AUCFloor bounds the renormalization mass from below.
	AUCFloor = 1e-6

	// DenominatorFloor is the null-model probability outside [1, L−N+1] or
	// when a binomial is not representable in 64 bits.
	DenominatorFloor = 1e-4
)

// Numerator returns the connector-model probability of a gap of length gap.
//
// Algorithm:
//  1. p = NormalPMF(gap, μ, σ).
//  2. σ == 0 → return p unchanged (point mass, no renormalization).
//  3. auc = CDF(effectiveLen−1) − CDF(0), floored at AUCFloor.
//  4. p floored at NumeratorFloor.
//  5. return p / auc.
//
// Step 3 renormalizes the Gaussian over the gap lengths the sequence can
// actually realize.
func Numerator(effectiveLen, gap int, mu, sigma float64) float64 {
	p := NormalPMF(float64(gap), mu, sigma)
	if sigma == 0 {
		return p
	}

	auc := NormalCDF(float64(effectiveLen-1), mu, sigma) - NormalCDF(0, mu, sigma)
	if auc < AUCFloor {
		auc = AUCFloor
	}
	if p < NumeratorFloor {
		p = NumeratorFloor
	}

	return p / auc
}

// Denominator returns the null-model probability of a 1-indexed gap d
// (d = gap length + 1) among n recognizers packed into effectiveLen:
//
//	C(L−d, N−1) / C(L, N)   for 1 ≤ d ≤ L−N+1
//	DenominatorFloor        otherwise
//
// A binomial that overflows 64 bits comes back from combinatorics.Binomial
// as 0; that case also resolves to DenominatorFloor.
func Denominator(d, n, effectiveLen int) float64 {
	if n < 1 || d < 1 || d > effectiveLen-n+1 {
		return DenominatorFloor
	}

	num := combinatorics.Binomial(uint64(effectiveLen-d), uint64(n-1))
	den := combinatorics.Binomial(uint64(effectiveLen), uint64(n))
	if num == 0 || den == 0 {
		return DenominatorFloor
	}

	return float64(num) / float64(den)
}
