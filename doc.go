// Package multiplace places composite DNA-binding factors on a sequence.
//
// 🚀 What is a composite factor?
//
//	A fixed, ordered chain of recognizers (position-specific scoring
//	matrices) joined by flexible connectors. Each connector prefers some
//	gap lengths over others. multiplace finds the start of every
//	recognizer that maximizes the summed log-odds of the whole chain.
//
// ✨ Packages:
//
//	combinatorics/ - overflow-safe binomials, log2-factorial table
//	matrix/        - bounds-checked row-major float64 and int tables
//	gapmodel/      - Gaussian and tabulated connector gap models + null model
//	scanner/       - recognizers, admissible columns, score matrix
//	placement/     - DP sweep, traceback, Place entry point
//	flat/          - flat-buffer boundary with connector-model inference
//	cmd/multiplace - JSON job in, placement report out
//
// Quick ASCII example:
//
//	AAA···TTT······
//	└─┘ 3 └─┘
//
//	an A-box and a T-box three bases apart, the placement preferred by a
//	connector with μ = 3, σ = 1.
//
//	go get github.com/katalvlaran/multiplace
package multiplace
