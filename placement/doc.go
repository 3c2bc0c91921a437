// Package placement finds the best-scoring placement of a recognizer chain
// on a DNA sequence.
//
// 🚀 What is a placement?
//
//	A chain is N recognizers (PSSMs) joined by N−1 connectors. A placement
//	fixes where the first recognizer starts and how many unscored bases
//	(the gap) precede each later one. Its score is the sum of every
//	recognizer's log-odds at its position plus every connector's log-odds
//	at its gap length.
//
// ✨ How it is computed:
//   - scanner.ScoreMatrix scores each recognizer at each admissible column.
//   - Fill sweeps the chain row by row: cell (i, j) keeps the best cumulative
//     score of recognizers 0..i with recognizer i at column j, over every
//     predecessor column k ≤ j (gap j − k), and records the winning gap.
//   - Traceback walks the recorded gaps back from the best final cell.
//
// Tie-break rule: inside a cell the smallest predecessor column k wins (k
// = 0 seeds the running maximum, later k replace it only when strictly
// greater); across the final row the smallest column wins.
//
// ⚙️ Usage:
//
//	model, _ := gapmodel.NewAnalytic([]gapmodel.Gaussian{{Mu: 3, Sigma: 1}})
//	res, err := placement.Place(seq, recognizers, model, placement.DefaultOptions())
//	fmt.Println(res.Start, res.Gaps, res.Total)
//
// Memory modes:
//   - TwoRows   - two swapped cumulative rows + the (N−1)×A backpointer table.
//   - FullTable - keeps the whole N×A cumulative table for inspection.
//
// Complexity:
//
//   - Time:   O(N·A²) for the sweep, O(N·L·cols) for scanning
//   - Memory: O(N·A)
//
// A call owns all of its tables; nothing is shared between calls except
// read-only connector models.
package placement
