package jobio_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/internal/jobio"
	"github.com/katalvlaran/multiplace/placement"
)

const boxesJob = `{
  "sequence": "AAAGGGTTTCCCCCC",
  "recognizers": [
    {"name": "A-box", "pssm": [[1,0,0,0],[1,0,0,0],[1,0,0,0]]},
    {"name": "T-box", "pssm": [[0,0,0,1],[0,0,0,1],[0,0,0,1]]}
  ],
  "connectors": [{"mu": 3, "sigma": 1}]
}`

func TestDecode_Analytic(t *testing.T) {
	job, err := jobio.Decode(strings.NewReader(boxesJob))
	require.NoError(t, err)

	recs, err := job.Chain()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "T-box", recs[1].Name)
	assert.Equal(t, 3, recs[1].Cols())

	model, err := job.Model(nil)
	require.NoError(t, err)
	require.IsType(t, &gapmodel.Analytic{}, model)
	assert.Equal(t, []gapmodel.Gaussian{{Mu: 3, Sigma: 1}}, model.(*gapmodel.Analytic).Params())
}

func TestDecode_Tabulated(t *testing.T) {
	job, err := jobio.Decode(strings.NewReader(`{
	  "sequence": "ACGT",
	  "recognizers": [{"pssm": [[1,0,0,0]]}, {"pssm": [[0,0,0,1]]}],
	  "tabulated": [[0.1, 0.2, 0.7]]
	}`))
	require.NoError(t, err)

	recs, err := job.Chain()
	require.NoError(t, err)
	assert.Equal(t, "r0", recs[0].Name, "unnamed recognizers get positional names")

	model, err := job.Model(nil)
	require.NoError(t, err)
	require.IsType(t, &gapmodel.Tabulated{}, model)
	assert.Equal(t, 3, model.(*gapmodel.Tabulated).MaxLength())
}

func TestDecode_Errors(t *testing.T) {
	_, err := jobio.Decode(strings.NewReader(`{"sequence": "A", "bogus": 1}`))
	assert.ErrorIs(t, err, jobio.ErrBadJob)
	_, err = jobio.Decode(strings.NewReader(`{`))
	assert.ErrorIs(t, err, jobio.ErrBadJob)

	cases := map[string]string{
		"no recognizers": `{"sequence": "A"}`,
		"short row":      `{"sequence": "A", "recognizers": [{"pssm": [[1,0,0]]}]}`,
		"empty pssm":     `{"sequence": "A", "recognizers": [{"pssm": []}]}`,
	}
	for name, doc := range cases {
		job, err := jobio.Decode(strings.NewReader(doc))
		require.NoError(t, err, name)
		_, err = job.Chain()
		assert.ErrorIs(t, err, jobio.ErrBadJob, name)
	}

	job, err := jobio.Decode(strings.NewReader(`{"sequence": "AT",
	  "recognizers": [{"pssm": [[1,0,0,0]]}, {"pssm": [[0,0,0,1]]}]}`))
	require.NoError(t, err)
	_, err = job.Model(nil)
	assert.ErrorIs(t, err, jobio.ErrBadJob, "missing connectors")

	job.Connectors = []gapmodel.Gaussian{{Mu: 1, Sigma: 1}}
	job.Tabulated = [][]float64{{0.5}}
	_, err = job.Model(nil)
	assert.ErrorIs(t, err, jobio.ErrBadJob, "both connector forms")

	job.Connectors = nil
	job.Tabulated = [][]float64{{0.5, 0.5}, {0.5}}
	_, err = job.Model(nil)
	assert.ErrorIs(t, err, jobio.ErrBadJob, "ragged table")
}

// TestReport places the boxes job and checks both encodings.
func TestReport(t *testing.T) {
	job, err := jobio.Decode(strings.NewReader(boxesJob))
	require.NoError(t, err)
	recs, err := job.Chain()
	require.NoError(t, err)
	model, err := job.Model(nil)
	require.NoError(t, err)
	res, err := placement.Place([]byte(job.Sequence), recs, model, placement.DefaultOptions())
	require.NoError(t, err)

	rep := jobio.NewReport(res, recs, len(job.Sequence))
	assert.Equal(t, []jobio.RecognizerHit{
		{Name: "A-box", Start: 0, End: 3, Score: 3},
		{Name: "T-box", Start: 6, End: 9, Score: 3},
	}, rep.Recognizers)
	require.Len(t, rep.Connectors, 1)
	assert.Equal(t, 3, rep.Connectors[0].Gap)
	assert.Equal(t, 6, rep.Trailing)

	var buf bytes.Buffer
	require.NoError(t, jobio.EncodeJSON(&buf, rep))
	var back jobio.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, rep.Recognizers, back.Recognizers)
	assert.InDelta(t, rep.Total, back.Total, 1e-12)

	buf.Reset()
	require.NoError(t, jobio.WriteText(&buf, rep))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "sequence\t15 bases", lines[0])
	assert.Equal(t, "recognizer\tA-box\t0\t3\t3.000000", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "connector\t0\t3\t"))
	assert.True(t, strings.HasPrefix(lines[4], "total\t"))
}

// TestWriteText_Header checks the run line and digit grouping.
func TestWriteText_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jobio.WriteText(&buf, jobio.Report{RunID: "job-1", SequenceLength: 1234567}))
	assert.Equal(t, "run\tjob-1\nsequence\t1,234,567 bases\ntotal\t0.000000\n", buf.String())
}

func TestReadFASTA(t *testing.T) {
	recs, err := jobio.ReadFASTA(strings.NewReader(">chr1\nAAAGGG\nTTTCCCCCC\n>chr2\nACGT\n"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "chr1", recs[0].Name)
	assert.Equal(t, "AAAGGGTTTCCCCCC", string(recs[0].Sequence))
	assert.Equal(t, "ACGT", string(recs[1].Sequence))

	_, err = jobio.ReadFASTA(strings.NewReader(""))
	assert.ErrorIs(t, err, jobio.ErrBadJob)
}
