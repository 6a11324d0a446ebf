package brc

import (
	"errors"
	"fmt"
	"strconv"
)

// StationStat is the running aggregate for one station. All values are in
// tenths of a degree.
type StationStat struct {
	Count uint64
	Sum   int64
	Min   int32
	Max   int32
}

func NewStationStat(v int32) StationStat {
	return StationStat{Count: 1, Sum: int64(v), Min: v, Max: v}
}

// Fold incorporates one measurement.
func (s *StationStat) Fold(v int32) {
	s.Count++
	s.Sum += int64(v)
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
}

// Merge combines other into s. Merge is associative and commutative.
func (s *StationStat) Merge(other StationStat) {
	if other.Count == 0 {
		return
	}
	if s.Count == 0 {
		*s = other
		return
	}
	s.Count += other.Count
	s.Sum += other.Sum
	if other.Min < s.Min {
		s.Min = other.Min
	}
	if other.Max > s.Max {
		s.Max = other.Max
	}
}

// Mean returns Sum/Count in tenths, rounded according to policy.
func (s StationStat) Mean(policy RoundingPolicy) int64 {
	if s.Count == 0 {
		return 0
	}
	return policy.Div(s.Sum, int64(s.Count))
}

// RoundingPolicy decides how a mean that falls between two tenths is rounded.
type RoundingPolicy int

const (
	// HalfUp rounds ties away from zero: 2.5 -> 3, -2.5 -> -3.
	HalfUp RoundingPolicy = iota
	// HalfEven rounds ties to the even neighbour: 2.5 -> 2, 3.5 -> 4.
	HalfEven
)

var ErrUnknownRounding = errors.New("unknown rounding policy")

func ParseRoundingPolicy(s string) (RoundingPolicy, error) {
	switch s {
	case "half-up", "":
		return HalfUp, nil
	case "half-even":
		return HalfEven, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownRounding)
}

func (p RoundingPolicy) String() string {
	switch p {
	case HalfEven:
		return "half-even"
	default:
		return "half-up"
	}
}

// Div divides num by den (den > 0) and rounds the quotient to an integer.
func (p RoundingPolicy) Div(num, den int64) int64 {
	q, r := num/den, num%den
	if r == 0 {
		return q
	}
	sign := int64(1)
	if r < 0 {
		sign, r = -1, -r
	}
	twice := 2 * r
	switch {
	case twice > den:
		q += sign
	case twice == den:
		if p == HalfUp || q%2 != 0 {
			q += sign
		}
	}
	return q
}

// FormatTenths appends v/10 with exactly one fractional digit, e.g. -5 -> "-0.5".
func FormatTenths(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	dst = strconv.AppendInt(dst, v/10, 10)
	dst = append(dst, '.')
	return append(dst, byte('0'+v%10))
}
