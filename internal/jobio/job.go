// Package jobio decodes placement jobs and encodes their reports.
package jobio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/multiplace/combinatorics"
	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/matrix"
	"github.com/katalvlaran/multiplace/scanner"
)

// ErrBadJob indicates a job document that cannot describe a chain.
var ErrBadJob = errors.New("jobio: invalid job")

// Job is one placement request.
//
//	{
//	  "sequence": "AAAGGGTTTCCCCCC",
//	  "recognizers": [{"name": "A-box", "pssm": [[1,0,0,0], ...]}, ...],
//	  "connectors": [{"mu": 3, "sigma": 1}]
//	}
//
// Connectors are given either as Gaussians ("connectors") or as gap
// probability rows ("tabulated"), never both.
type Job struct {
	Sequence    string              `json:"sequence"`
	Recognizers []RecognizerSpec    `json:"recognizers"`
	Connectors  []gapmodel.Gaussian `json:"connectors,omitempty"`
	Tabulated   [][]float64         `json:"tabulated,omitempty"`
}

// RecognizerSpec is a named PSSM, one row per column in {A,G,C,T} order.
type RecognizerSpec struct {
	Name string      `json:"name"`
	PSSM [][]float64 `json:"pssm"`
}

// Decode reads one Job from r. Unknown fields are rejected.
func Decode(r io.Reader) (Job, error) {
	var job Job
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&job); err != nil {
		return Job{}, fmt.Errorf("%w: %w", ErrBadJob, err)
	}

	return job, nil
}

// Chain converts the PSSM specs into scanner recognizers.
func (j Job) Chain() ([]scanner.Recognizer, error) {
	if len(j.Recognizers) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrBadJob, scanner.ErrNoRecognizers)
	}
	recs := make([]scanner.Recognizer, len(j.Recognizers))
	var (
		i    int
		spec RecognizerSpec
		pssm *matrix.Dense
		err  error
	)
	for i, spec = range j.Recognizers {
		if pssm, err = denseFromRows(spec.PSSM, scanner.NumBases); err != nil {
			return nil, fmt.Errorf("recognizer %d (%s): %w", i, spec.Name, err)
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("r%d", i)
		}
		if recs[i], err = scanner.NewRecognizer(name, pssm); err != nil {
			return nil, err
		}
	}

	return recs, nil
}

// Model builds the connector model. A single-recognizer job yields nil.
// table is passed to tabulated models (combinatorics.Default() when nil).
func (j Job) Model(table *combinatorics.Log2FactorialTable) (gapmodel.ConnectorModel, error) {
	switch {
	case len(j.Connectors) > 0 && len(j.Tabulated) > 0:
		return nil, fmt.Errorf("%w: both connectors and tabulated given", ErrBadJob)
	case len(j.Connectors) > 0:
		analytic, err := gapmodel.NewAnalytic(j.Connectors)
		if err != nil {
			return nil, err
		}
		return analytic, nil
	case len(j.Tabulated) > 0:
		probs, err := denseFromRows(j.Tabulated, len(j.Tabulated[0]))
		if err != nil {
			return nil, fmt.Errorf("tabulated: %w", err)
		}
		tab, err := gapmodel.NewTabulated(probs, table)
		if err != nil {
			return nil, err
		}
		return tab, nil
	case len(j.Recognizers) > 1:
		return nil, fmt.Errorf("%w: %d recognizers need connectors", ErrBadJob, len(j.Recognizers))
	}

	return nil, nil
}

// denseFromRows packs equal-length rows of width cols into a Dense.
func denseFromRows(rows [][]float64, cols int) (*matrix.Dense, error) {
	if len(rows) == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrBadJob)
	}
	data := make([]float64, 0, len(rows)*cols)
	var (
		i   int
		row []float64
	)
	for i, row = range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadJob, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return matrix.NewDenseFrom(len(rows), cols, data)
}
