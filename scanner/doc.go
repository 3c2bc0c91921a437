// Package scanner scores every recognizer of a placement chain at every
// admissible start position of a DNA sequence.
//
// A recognizer is a position-specific scoring matrix: one row per motif
// column, four log-odds values per row in the fixed base order A, G, C, T.
// Recognizers are placed left to right, never overlap and never change
// order, so recognizer i can only start inside
//
//	[ForwardOffset(i), L − ReverseOffset(i))
//
// where ForwardOffset is the width of everything to its left and
// ReverseOffset the width of everything from i on, minus one. Every window
// has the same length A = L − Σcols + 1, which is why ScoreMatrix can store
// all recognizers in one N × A table indexed relative to each window origin.
//
// Bytes other than A/C/G/T (either case) contribute 0 to a column.
package scanner
