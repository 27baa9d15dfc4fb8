package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/discopt/cmr-sub003/env"
	"github.com/discopt/cmr-sub003/ioformats"
	"github.com/discopt/cmr-sub003/matrix"
)

// commonFlags is the flag set this standardises across every
// subcommand: input/output format, transpose, certificates, restriction
// to a submatrix, randomisation, stats, and a time budget.
type commonFlags struct {
	input      string
	output     string
	transpose  bool
	certs      bool
	submatrix  string
	nonGraphic string
	randomizeR bool
	r2, r3     int
	stats      bool
	timeLimit  float64
}

func newCommonFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cf := &commonFlags{}
	fs.StringVar(&cf.input, "i", "dense", "input format: dense or sparse")
	fs.StringVar(&cf.output, "o", "dense", "output format")
	fs.BoolVar(&cf.transpose, "t", false, "transpose / dual test")
	fs.BoolVar(&cf.certs, "c", false, "emit certificates")
	fs.StringVar(&cf.submatrix, "S", "", "restrict operation to a submatrix file")
	fs.StringVar(&cf.nonGraphic, "N", "", "write a negative violator submatrix here, in -o format")
	fs.BoolVar(&cf.randomizeR, "r", false, "randomise by permuting rows and columns")
	fs.IntVar(&cf.r2, "R2", 0, "randomise via N binary pivots")
	fs.IntVar(&cf.r3, "R3", 0, "randomise via N ternary pivots")
	fs.BoolVar(&cf.stats, "stats", false, "print statistics to stderr")
	fs.Float64Var(&cf.timeLimit, "time-limit", 0, "wall-clock budget in seconds")
	return fs, cf
}

// writeViolator writes a 2x2-or-larger violator's submatrix of m to the
// -N target when one was given and certificates were requested, per
// this "-N FILE: Write ... non-(co)graphic submatrix".
func writeViolator(cf *commonFlags, m *matrix.Matrix[int8], rows, cols []int) error {
	if !cf.certs || cf.nonGraphic == "" {
		return nil
	}
	sub, err := m.Slice(&matrix.Submatrix{Rows: rows, Columns: cols})
	if err != nil {
		return err
	}
	out, err := openOutput(cf.nonGraphic)
	if err != nil {
		return err
	}
	defer out.Close()
	return writeMatrix(out, sub, cf.output)
}

// openInput opens name for reading, treating "-" as stdin .
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// openOutput opens name for writing, treating "-" as stdout.
func openOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// readMatrix reads a matrix off r in the named format.
func readMatrix(r io.Reader, format string) (*matrix.Matrix[int8], error) {
	switch format {
	case "dense":
		return ioformats.ReadDense(r)
	case "sparse":
		return ioformats.ReadSparse(r)
	default:
		return nil, newInputError("unknown input format %q", format)
	}
}

// writeMatrix writes m to w in the named format.
func writeMatrix(w io.Writer, m *matrix.Matrix[int8], format string) error {
	switch format {
	case "dense":
		return ioformats.WriteDense(w, m)
	case "sparse":
		return ioformats.WriteSparse(w, m)
	default:
		return newInputError("unknown output format %q", format)
	}
}

// buildEnv constructs the env.Environment a subcommand's call runs
// under, applying --time-limit as a context deadline. The
// cancel func is deliberately not called: the process exits at the end
// of the one subcommand this builds an Environment for, so nothing
// outlives it.
func buildEnv(cf *commonFlags) *env.Environment {
	if cf.timeLimit <= 0 {
		return env.New()
	}
	ctx, _ := context.WithTimeout(context.Background(), time.Duration(cf.timeLimit*float64(time.Second)))
	return env.New(env.WithContext(ctx))
}

func printStats(cf *commonFlags, e *env.Environment) {
	if !cf.stats {
		return
	}
	st := e.Stats()
	fmt.Fprintf(os.Stderr, "nodes=%d tasks=%d pivots=%d bfs=%d\n",
		st.NodesCreated, st.TasksProcessed, st.PivotCount, st.BFSRuns)
}
