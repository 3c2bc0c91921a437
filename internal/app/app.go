// Package app implements the multiplace command line.
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/katalvlaran/multiplace/internal/jobio"
	"github.com/katalvlaran/multiplace/placement"
	"github.com/katalvlaran/multiplace/scanner"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ErrNoPlacement indicates that every placement scored −Inf.
var ErrNoPlacement = errors.New("multiplace: no placement has finite score")

// options holds parsed command-line flags.
type options struct {
	in        string
	fasta     string
	format    string
	verbose   bool
	fullTable bool
	quiet     bool
}

// newFlagSet binds the command-line flags to opts.
func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("multiplace", flag.ContinueOnError)
	fs.StringVar(&opts.in, "in", "-", "job file (JSON); - reads stdin")
	fs.StringVar(&opts.fasta, "fasta", "", "FASTA file; its first record replaces the job sequence")
	fs.StringVar(&opts.format, "format", "json", "output format: json or text")
	fs.BoolVar(&opts.verbose, "v", false, "print DP progress to stderr")
	fs.BoolVar(&opts.fullTable, "full-table", false, "keep the full cumulative DP table")
	fs.BoolVar(&opts.quiet, "quiet", false, "suppress warnings")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "usage: multiplace [flags] < job.json\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs
}

// RunContext runs the command with argv (without the program name) and
// returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts)
	fs.SetOutput(stderr)
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if opts.format != "json" && opts.format != "text" {
		_, _ = fmt.Fprintf(stderr, "unknown -format %q\n", opts.format)
		fs.Usage()
		return ExitUsage
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return ExitUsage
	}

	job, err := readJob(opts.in, stdin)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	recs, err := job.Chain()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	model, err := job.Model(nil)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	seq := []byte(job.Sequence)
	var seqName string
	if opts.fasta != "" {
		if seqName, seq, err = readFASTA(opts.fasta, stderr, opts.quiet, job.Sequence != ""); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitUsage
		}
	}
	if n := countUnknown(seq); n > 0 {
		Warnf(stderr, opts.quiet, "%s sequence symbols outside ACGT score 0", humanize.Comma(int64(n)))
	}

	popts := placement.DefaultOptions()
	popts.Verbose = opts.verbose
	popts.Log = stderr
	if opts.fullTable {
		popts.MemoryMode = placement.FullTable
	}

	if err = ctx.Err(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitError
	}
	res, err := placement.Place(seq, recs, model, popts)
	if err == nil && math.IsInf(res.Total, -1) {
		err = ErrNoPlacement
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitError
	}

	outw := bufio.NewWriter(stdout)
	rep := jobio.NewReport(res, recs, len(seq))
	rep.RunID = uuid.NewString()
	rep.SequenceName = seqName
	if opts.format == "text" {
		err = jobio.WriteText(outw, rep)
	} else {
		err = jobio.EncodeJSON(outw, rep)
	}
	if err == nil {
		err = outw.Flush()
	}
	if err != nil && !IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitError
	}

	return ExitOK
}

// readJob decodes the job from path, or from stdin when path is "-".
func readJob(path string, stdin io.Reader) (jobio.Job, error) {
	if path == "-" {
		return jobio.Decode(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return jobio.Job{}, err
	}

	return jobio.Decode(bytes.NewReader(data))
}

// readFASTA returns the first record of the FASTA file at path. Extra
// records and a shadowed job sequence are reported as warnings.
func readFASTA(path string, stderr io.Writer, quiet, shadows bool) (string, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	recs, err := jobio.ReadFASTA(f)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(recs) > 1 {
		Warnf(stderr, quiet, "%s: using %q, ignoring %d more records", path, recs[0].Name, len(recs)-1)
	}
	if shadows {
		Warnf(stderr, quiet, "-fasta overrides the job sequence")
	}

	return recs[0].Name, recs[0].Sequence, nil
}

// countUnknown counts the bytes that no recognizer can score.
func countUnknown(seq []byte) int {
	var n int
	for _, b := range seq {
		if scanner.BaseIndex(b) < 0 {
			n++
		}
	}

	return n
}
