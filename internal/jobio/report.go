package jobio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/multiplace/placement"
	"github.com/katalvlaran/multiplace/scanner"
)

// Report is the printable form of a placement.
type Report struct {
	RunID          string          `json:"run_id,omitempty"`
	SequenceName   string          `json:"sequence_name,omitempty"`
	SequenceLength int             `json:"sequence_length"`
	Recognizers    []RecognizerHit `json:"recognizers"`
	Connectors     []ConnectorSpan `json:"connectors"`
	Trailing       int             `json:"trailing"`
	Total          float64         `json:"total"`
}

// RecognizerHit locates one recognizer: bases [Start, End).
type RecognizerHit struct {
	Name  string  `json:"name"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Score float64 `json:"score"`
}

// ConnectorSpan is the gap realized by one connector.
type ConnectorSpan struct {
	Gap   int     `json:"gap"`
	Score float64 `json:"score"`
}

// NewReport lays res out over recs on a sequence of seqLen bases.
func NewReport(res placement.Result, recs []scanner.Recognizer, seqLen int) Report {
	cols := scanner.Widths(recs)
	pos := res.Positions(cols)
	rep := Report{
		SequenceLength: seqLen,
		Recognizers:    make([]RecognizerHit, len(recs)),
		Connectors:     make([]ConnectorSpan, len(res.Gaps)),
		Trailing:       res.TrailingOffset(seqLen, cols),
		Total:          res.Total,
	}
	var i int
	for i = range recs {
		rep.Recognizers[i] = RecognizerHit{
			Name:  recs[i].Name,
			Start: pos[i],
			End:   pos[i] + cols[i],
			Score: res.RecognizerScores[i],
		}
	}
	for i = range res.Gaps {
		rep.Connectors[i] = ConnectorSpan{Gap: res.Gaps[i], Score: res.ConnectorScores[i]}
	}

	return rep
}

// EncodeJSON writes rep as indented JSON.
func EncodeJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// WriteText writes rep as tab-separated lines:
//
//	run        <id>                  (only when RunID is set)
//	sequence   <length> bases
//	recognizer <name> <start> <end> <score>
//	connector  <index> <gap> <score>
//	total      <score>
func WriteText(w io.Writer, rep Report) error {
	var err error
	if rep.RunID != "" {
		if _, err = fmt.Fprintf(w, "run\t%s\n", rep.RunID); err != nil {
			return err
		}
	}
	if _, err = fmt.Fprintf(w, "sequence\t%s bases\n", humanize.Comma(int64(rep.SequenceLength))); err != nil {
		return err
	}
	for _, r := range rep.Recognizers {
		if _, err = fmt.Fprintf(w, "recognizer\t%s\t%d\t%d\t%.6f\n", r.Name, r.Start, r.End, r.Score); err != nil {
			return err
		}
	}
	for i, c := range rep.Connectors {
		if _, err = fmt.Fprintf(w, "connector\t%d\t%d\t%.6f\n", i, c.Gap, c.Score); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "total\t%.6f\n", rep.Total)

	return err
}
