package brc

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

const valueSep = ';'

var (
	ErrMissingDelimiter = errors.New("separator not found")
	ErrEmptyKey         = errors.New("empty station name")
	ErrMalformedNumber  = errors.New("malformed temperature")
)

// ParseError reports a record that could not be parsed. Offset is the
// absolute byte offset of the start of the record in the input.
type ParseError struct {
	Offset int64
	Line   []byte
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse record at offset %d %q: %v", e.Offset, e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Reason }

// ParseLine splits a single record (without its trailing newline) into the
// station name and the temperature in tenths of a degree. The returned key
// aliases line.
func ParseLine(line []byte) (key []byte, tenths int32, err error) {
	sep := bytes.IndexByte(line, valueSep)
	if sep == -1 {
		return nil, 0, ErrMissingDelimiter
	}
	if sep == 0 {
		return nil, 0, ErrEmptyKey
	}
	tenths, err = ParseTenths(line[sep+1:])
	if err != nil {
		return nil, 0, err
	}
	return line[:sep], tenths, nil
}

// ParseTenths converts -?[0-9]+(\.[0-9])? into an integer count of tenths,
// so "12.3" is 123 and "-4" is -40.
func ParseTenths(value []byte) (int32, error) {
	neg := false
	if len(value) > 0 && value[0] == '-' {
		neg = true
		value = value[1:]
	}

	var v int64
	i := 0
	for ; i < len(value) && value[i] != '.'; i++ {
		d := value[i] - '0'
		if d > 9 {
			return 0, ErrMalformedNumber
		}
		v = v*10 + int64(d)
		if v > math.MaxInt32 {
			return 0, ErrMalformedNumber
		}
	}
	if i == 0 {
		return 0, ErrMalformedNumber
	}

	v *= 10
	if i < len(value) {
		if len(value) != i+2 {
			return 0, ErrMalformedNumber
		}
		d := value[i+1] - '0'
		if d > 9 {
			return 0, ErrMalformedNumber
		}
		v += int64(d)
	}
	if v > math.MaxInt32 {
		return 0, ErrMalformedNumber
	}

	if neg {
		v = -v
	}
	return int32(v), nil
}
