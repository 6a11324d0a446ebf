// Package brc computes per-station min, mean and max temperatures over a
// file of "name;value" records using all available cores.
//
// The input is split into newline-aligned chunks, one per worker. Each worker
// folds its chunk into a private Table; once every worker is done the tables
// are merged and sorted into a Report. Values are kept as integer tenths
// throughout, so the result does not depend on the number of workers.
package brc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// ByteSource is a read-only view of the whole input.
type ByteSource interface {
	Bytes() []byte
}

type Options struct {
	// Workers is the number of chunks scanned in parallel.
	// Zero means runtime.GOMAXPROCS(-1).
	Workers  int
	Rounding RoundingPolicy
	// Logger receives progress and timing diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(-1)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Solve aggregates every record of src. It fails with a *ParseError on the
// first malformed record any worker meets, in which case no report is built.
func Solve(ctx context.Context, src ByteSource, opts Options) (Report, error) {
	log := opts.logger()
	data := src.Bytes()
	workers := opts.workers()

	start := time.Now()
	chunks := Plan(data, workers)
	for i, c := range chunks {
		log.Debug("chunk planned", "worker", i+1, "start", c.Start, "end", c.End)
	}
	log.Info("plan done", "workers", workers, "bytes", len(data), "took", time.Since(start))

	start = time.Now()
	tables, err := scan(ctx, data, chunks, log)
	if err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}
	log.Info("scan done", "took", time.Since(start))

	start = time.Now()
	merged := Merge(tables...)
	log.Info("merge done", "stations", len(merged), "took", time.Since(start))

	start = time.Now()
	report := BuildReport(merged, opts.Rounding)
	log.Info("report done", "rounding", opts.Rounding, "took", time.Since(start))
	return report, nil
}

func scan(ctx context.Context, data []byte, chunks []Chunk, log *slog.Logger) ([]*Table, error) {
	eg, ectx := errgroup.WithContext(ctx)

	tables := make([]*Table, len(chunks))
	capacity := MaxStations / len(chunks)
	for i, c := range chunks {
		table := NewTable(capacity)
		tables[i] = table
		eg.Go(func() error {
			log.Debug("worker started", "worker", i+1, "bytes", c.Len())
			n, err := Aggregate(ectx, data, c, table)
			if err != nil {
				return err
			}
			log.Debug("worker finished", "worker", i+1, "records", n, "stations", table.Len())
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
