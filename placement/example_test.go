package placement_test

import (
	"fmt"

	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/matrix"
	"github.com/katalvlaran/multiplace/placement"
	"github.com/katalvlaran/multiplace/scanner"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePlace
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two 3-column boxes (AAA, TTT) joined by one connector expecting a
//	gap of 3 ± 1 bases, on the 15-base sequence AAAGGGTTTCCCCCC.
//
// Options:
//   - MemoryMode = TwoRows (default)
//
// Complexity: O(N·A²) time, O(N·A) memory
func ExamplePlace() {
	box := func(name string, base int) scanner.Recognizer {
		pssm, _ := matrix.NewDense(3, scanner.NumBases)
		for k := 0; k < 3; k++ {
			_ = pssm.Set(k, base, 1)
		}
		rec, _ := scanner.NewRecognizer(name, pssm)
		return rec
	}
	recs := []scanner.Recognizer{box("A-box", scanner.BaseA), box("T-box", scanner.BaseT)}
	model, _ := gapmodel.NewAnalytic([]gapmodel.Gaussian{{Mu: 3, Sigma: 1}})
	seq := []byte("AAAGGGTTTCCCCCC")

	res, err := placement.Place(seq, recs, model, placement.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start:", res.Start)
	fmt.Println("gaps:", res.Gaps)
	fmt.Println("positions:", res.Positions(scanner.Widths(recs)))
	fmt.Println("recognizer scores:", res.RecognizerScores)
	fmt.Println("trailing:", res.TrailingOffset(len(seq), scanner.Widths(recs)))
	// Output:
	// start: 0
	// gaps: [3]
	// positions: [0 6]
	// recognizer scores: [3 3]
	// trailing: 6
}
