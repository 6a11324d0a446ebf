package brc

import (
	"bytes"
	"context"
)

const (
	// records between checks for a failed sibling worker
	cancelCheckEvery = 1 << 16
	maxErrLine       = 64
)

// Aggregate scans chunk c of data record by record and folds each one into t.
// The last record of the input may lack a trailing newline. It stops at the
// first malformed record and returns a *ParseError, or ctx.Err() once ctx is
// done. It returns the number of records folded.
func Aggregate(ctx context.Context, data []byte, c Chunk, t *Table) (int, error) {
	buf := data[c.Start:c.End]
	records := 0
	consumed := 0
	for consumed < len(buf) {
		if records%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return records, err
			}
		}

		line := buf[consumed:]
		next := len(buf)
		if le := bytes.IndexByte(line, endLine); le != -1 {
			line = line[:le]
			next = consumed + le + 1
		}

		key, v, err := ParseLine(line)
		if err != nil {
			return records, &ParseError{
				Offset: int64(c.Start + consumed),
				Line:   bytes.Clone(line[:min(len(line), maxErrLine)]),
				Reason: err,
			}
		}
		t.Fold(key, v)
		records++
		consumed = next
	}
	return records, nil
}
