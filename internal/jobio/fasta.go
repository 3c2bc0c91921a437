package jobio

import (
	"fmt"
	"io"

	"github.com/TuftsBCB/io/fasta"
)

// Record is one named sequence read from a FASTA file.
type Record struct {
	Name     string
	Sequence []byte
}

// ReadFASTA reads every record from r. An input without records is an
// ErrBadJob, as is any parse error.
func ReadFASTA(r io.Reader) ([]Record, error) {
	seqs, err := fasta.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: fasta: %w", ErrBadJob, err)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: fasta: no sequences", ErrBadJob)
	}
	recs := make([]Record, len(seqs))
	for i := range seqs {
		recs[i] = Record{Name: seqs[i].Name, Sequence: seqs[i].Bytes()}
	}

	return recs, nil
}
