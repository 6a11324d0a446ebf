package brc

import (
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Row is one station of the final report. Min, Mean and Max are in tenths.
type Row struct {
	Station string
	Count   uint64
	Sum     int64
	Min     int64
	Mean    int64
	Max     int64
}

// Report lists stations in ascending byte order of their names.
type Report []Row

func BuildReport(m Merged, policy RoundingPolicy) Report {
	names := maps.Keys(m)
	slices.Sort(names)

	r := make(Report, 0, len(names))
	for _, name := range names {
		st := m[name]
		r = append(r, Row{
			Station: name,
			Count:   st.Count,
			Sum:     st.Sum,
			Min:     int64(st.Min),
			Mean:    st.Mean(policy),
			Max:     int64(st.Max),
		})
	}
	return r
}

// AppendText appends {name=min/mean/max, ...} without a trailing newline.
func (r Report) AppendText(dst []byte) []byte {
	dst = append(dst, '{')
	for i, row := range r {
		if i != 0 {
			dst = append(dst, ',', ' ')
		}
		dst = append(dst, row.Station...)
		dst = append(dst, '=')
		dst = FormatTenths(dst, row.Min)
		dst = append(dst, '/')
		dst = FormatTenths(dst, row.Mean)
		dst = append(dst, '/')
		dst = FormatTenths(dst, row.Max)
	}
	return append(dst, '}')
}

func (r Report) String() string {
	return string(r.AppendText(nil))
}

// WriteTo writes the report as a single newline-terminated line.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 2+len(r)*32)
	buf = append(r.AppendText(buf), '\n')
	n, err := w.Write(buf)
	return int64(n), err
}
