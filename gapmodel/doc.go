// Package gapmodel scores connectors: the variable-length gaps between two
// consecutive recognizers of a placement chain.
//
// Every score is a log2 odds ratio
//
//	log2( P(gap | connector model) / P(gap | null model) )
//
// so it adds directly to recognizer log-odds scores.
//
// ✨ Two connector models, one interface:
//
//   - Analytic  - a discretized Gaussian per connector (mean μ, std σ),
//     renormalized over the legal gap range. σ == 0 is an explicit point
//     mass at μ.
//   - Tabulated - a precomputed probability per gap length; the null model
//     is evaluated through an injected log2-factorial table.
//
// The null model is the chance that N recognizers dropped uniformly into
// the effective length L leave a gap of length d−1 before one of them:
// C(L−d, N−1) / C(L, N) for 1 ≤ d ≤ L−N+1, and DenominatorFloor otherwise.
//
// ⚙️ Usage:
//
//	model, err := gapmodel.NewAnalytic([]gapmodel.Gaussian{{Mu: 3, Sigma: 1}})
//	geo := gapmodel.Geometry{SeqLen: 12, EffectiveLen: 6, Recognizers: 2}
//	s, err := model.Score(0, 3, geo)
//
// Nothing here returns an error for numeric edge cases: overflowing
// binomials, zero variance and out-of-domain gaps all resolve to fixed
// fallback values, so a DP sweep over these scores always completes.
package gapmodel
