// Command emminfo reads, converts, and interpolates tabulated optical
// material data.
//
// Usage:
//
//	emminfo [flags] [material]
//
// Without -grid or -at it prints the dataset on its own frequency points in
// the requested unit and representation.
//
// Examples:
//
//	emminfo -list
//	emminfo -list Ag
//	emminfo -unit eV -repr e Ag/Johnson
//	emminfo -unit eV -interp cubic -grid 1.0:3.0:21 Ag/Johnson
//	emminfo -unit nm -at 500,600 Ag/Johnson
//	emminfo -consts
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-emm/optics"
	"github.com/cwbudde/algo-emm/optics/interp"
	"github.com/cwbudde/algo-emm/optics/material"
	"github.com/cwbudde/algo-emm/optics/physconst"
	"github.com/cwbudde/algo-emm/optics/repr"
	"github.com/cwbudde/algo-emm/optics/unit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/floats"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	dataDir string
	list    bool
	consts  bool
	verbose bool
	grid    string
	at      string
	unit    unit.Unit
	repr    repr.Representation
	method  interp.Method
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	o := &options{}
	fs := flag.NewFlagSet("emminfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.dataDir, "data", material.DefaultDataDir(), "material data directory (default from $"+material.DataDirEnv+")")
	fs.BoolVar(&o.list, "list", false, "list collections, or the datasets of the given collection")
	fs.BoolVar(&o.consts, "consts", false, "print the physical constants table")
	fs.BoolVar(&o.verbose, "v", false, "log every read and interpolation")
	fs.StringVar(&o.grid, "grid", "", "interpolate onto start:stop:n evenly spaced points")
	fs.StringVar(&o.at, "at", "", "interpolate onto a comma-separated list of points")
	fs.TextVar(&o.unit, "unit", unit.Meter, "output unit (m, nm, um, Hz, GHz, THz, eV, cm-1)")
	fs.TextVar(&o.repr, "repr", repr.Index, "output representation (n or e)")
	fs.TextVar(&o.method, "interp", interp.Linear, "interpolation method (linear or cubic)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: emminfo [flags] [material]\n\n")
		fmt.Fprintf(stderr, "Reads, converts, and interpolates tabulated optical material data.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  emminfo -list Ag\n")
		fmt.Fprintf(stderr, "  emminfo -unit eV -repr e Ag/Johnson\n")
		fmt.Fprintf(stderr, "  emminfo -unit eV -interp cubic -grid 1.0:3.0:21 Ag/Johnson\n")
		fmt.Fprintf(stderr, "  emminfo -consts\n")
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if o.grid != "" && o.at != "" {
		return nil, nil, fmt.Errorf("-grid and -at are mutually exclusive: %w", optics.ErrInvalidArgument)
	}
	return o, fs.Args(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, rest, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	logger, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	lib := material.New(
		material.WithDataDir(o.dataDir),
		material.WithLogger(logger),
		material.WithVerbose(o.verbose),
	)

	switch {
	case o.consts:
		err = physconst.WriteTable(stdout)
	case o.list:
		err = printList(stdout, lib, strings.Join(rest, "/"))
	case len(rest) != 1:
		fmt.Fprintf(stderr, "error: exactly one material name is required (use -list to see available)\n")
		return 2
	default:
		err = printMaterial(stdout, lib, rest[0], o)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.InfoLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func printList(w io.Writer, lib *material.Library, collection string) error {
	names, err := lib.Avail(collection)
	if err != nil {
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

func printMaterial(w io.Writer, lib *material.Library, name string, o *options) error {
	q := material.Query{Unit: o.unit, Representation: o.repr, Method: o.method}

	var target []float64
	var err error
	switch {
	case o.grid != "":
		target, err = parseGrid(o.grid)
	case o.at != "":
		target, err = parseList(o.at)
	}
	if err != nil {
		return err
	}

	var freq []float64
	var values []complex128
	if target == nil {
		d, err := lib.Read(name, q)
		if err != nil {
			return err
		}
		freq, values = d.Frequency, d.Complex()
	} else {
		values, err = lib.Load(name, target, q)
		if err != nil {
			return err
		}
		freq = target
	}
	return writeTable(w, q, freq, values)
}

func writeTable(w io.Writer, q material.Query, freq []float64, values []complex128) error {
	re, im := "n", "k"
	if q.Representation == repr.Permittivity {
		re, im = "e'", "e''"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s [%v]\t%s\t%s\n", "Frequency", q.Unit, re, im); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---------\t-\t-\n"); err != nil {
		return err
	}
	for i, v := range values {
		if _, err := fmt.Fprintf(tw, "%.6g\t%.6f\t%.6f\n", freq[i], real(v), imag(v)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// parseGrid parses "start:stop:n" into n evenly spaced points.
func parseGrid(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("grid %q: want start:stop:n: %w", s, optics.ErrInvalidArgument)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("grid %q: start: %w", s, optics.ErrInvalidArgument)
	}
	stop, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("grid %q: stop: %w", s, optics.ErrInvalidArgument)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || n < 2 {
		return nil, fmt.Errorf("grid %q: n must be an integer >= 2: %w", s, optics.ErrInvalidArgument)
	}
	return floats.Span(make([]float64, n), start, stop), nil
}

// parseList parses comma-separated points.
func parseList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, optics.ErrInvalidArgument)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no points in %q: %w", s, optics.ErrInvalidArgument)
	}
	return out, nil
}
