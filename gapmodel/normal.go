package gapmodel

import "math"

// NormalCDF returns the Gaussian cumulative distribution at x for mean mu
// and standard deviation |sigma|:
//
//	(1 + erf((x − μ) / |σ| / √2)) / 2
//
// sigma must be non-zero; NormalPMF handles the σ == 0 point mass.
func NormalCDF(x, mu, sigma float64) float64 {
	z := (x - mu) / math.Abs(sigma)

	return (1 + math.Erf(z/math.Sqrt2)) / 2
}

// NormalPMF returns the Gaussian mass on the integer x, discretized as
// CDF(x+0.5) − CDF(x−0.5).
//
// sigma is compared against exact 0: zero variance is how a caller asks for
// a point mass at mu (1 when x == mu, 0 otherwise), not a rounding case.
func NormalPMF(x, mu, sigma float64) float64 {
	if sigma != 0 {
		return NormalCDF(x+0.5, mu, sigma) - NormalCDF(x-0.5, mu, sigma)
	}
	if x == mu {
		return 1
	}

	return 0
}
