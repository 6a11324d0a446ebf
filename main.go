package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/andreyvit/diff"
	"github.com/pkg/profile"

	"github.com/weirdgiraffe/onebrc/internal/brc"
	"github.com/weirdgiraffe/onebrc/internal/source"
)

const defaultFile = "measurements.txt"

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitMismatch = 3
)

var ErrReportMismatch = errors.New("report differs from expected output")

// Solve aggregates the measurements in filename and returns the sorted report.
// The input is released before Solve returns.
func Solve(ctx context.Context, filename string, kind source.Kind, opts brc.Options) (brc.Report, error) {
	src, err := source.Open(filename, kind)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return brc.Solve(ctx, src, opts)
}

// Compare checks report against the expected output and returns a line diff
// of the entries when they differ.
func Compare(report brc.Report, expected []byte) (string, error) {
	want := strings.TrimSpace(string(expected))
	got := report.String()
	if got == want {
		return "", nil
	}
	d := diff.LineDiff(
		diff.TrimLinesInString(splitEntries(want)),
		diff.TrimLinesInString(splitEntries(got)))
	return d, ErrReportMismatch
}

func splitEntries(s string) string {
	return strings.ReplaceAll(s, ", ", "\n")
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	}
	return nil, fmt.Errorf("unknown profile %q", name)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("1brc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: 1brc [flags] [FILE]\n\nFILE defaults to %s.\n\n", defaultFile)
		fs.PrintDefaults()
	}
	var (
		workers    = fs.Int("workers", 0, "number of parallel workers (0 uses GOMAXPROCS)")
		sourceKind = fs.String("source", string(source.KindMmap), "how to load the input: mmap, readat or read")
		rounding   = fs.String("rounding", brc.HalfUp.String(), "mean rounding policy: half-up or half-even")
		prof       = fs.String("profile", "", "record a cpu, mem or trace profile")
		profDir    = fs.String("profile-dir", ".", "directory for profile output")
		expect     = fs.String("expect", "", "compare the report with the expected output in `file`")
		verbose    = fs.Bool("v", false, "log per-worker diagnostics")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	filename := defaultFile
	switch fs.NArg() {
	case 0:
	case 1:
		filename = fs.Arg(0)
	default:
		fs.Usage()
		return exitUsage
	}
	if *workers < 0 {
		fmt.Fprintf(stderr, "invalid -workers %d\n", *workers)
		return exitUsage
	}
	kind, err := source.ParseKind(*sourceKind)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -source: %v\n", err)
		return exitUsage
	}
	policy, err := brc.ParseRoundingPolicy(*rounding)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -rounding: %v\n", err)
		return exitUsage
	}
	if *prof != "" {
		mode, err := profileMode(*prof)
		if err != nil {
			fmt.Fprintf(stderr, "invalid -profile: %v\n", err)
			return exitUsage
		}
		defer profile.Start(mode, profile.ProfilePath(*profDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	report, err := Solve(context.Background(), filename, kind, brc.Options{
		Workers:  *workers,
		Rounding: policy,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "failed to solve: %v\n", err)
		return exitFailure
	}
	if _, err := report.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "failed to write report: %v\n", err)
		return exitFailure
	}

	if *expect != "" {
		expected, err := os.ReadFile(*expect)
		if err != nil {
			fmt.Fprintf(stderr, "failed to read expected output: %v\n", err)
			return exitFailure
		}
		d, err := Compare(report, expected)
		if err != nil {
			fmt.Fprintf(stderr, "%v:\n%s\n", err, d)
			return exitMismatch
		}
		logger.Info("report matches expected output", "file", *expect)
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
