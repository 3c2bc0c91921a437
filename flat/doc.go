// Package flat exposes placement over flat numeric buffers.
//
// Callers that hold recognizers and connector parameters as contiguous
// float64 slices (foreign-function bridges, file loaders) fill an Input,
// pre-size an Output and call Calculate. The connector model is chosen
// from the buffer length:
//
//   - len(ConnectorMatrices) == 2·(N−1) - analytic: (μ, σ) per connector.
//   - otherwise                         - tabulated: (N−1) × MaxLength probabilities.
//
// When MaxLength == 2 both shapes have the same size and the analytic
// reading wins.
//
// Output.RecognizerScores has N+1 slots for every N: slots 0..N−1 hold
// the per-recognizer scores and slot N the total score of the chain.
package flat
