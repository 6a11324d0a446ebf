package brc

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

var testStations = []string{
	"Hamburg", "Oslo", "Bulawayo", "Palembang", "St. John's", "Cracow",
	"Bridgetown", "Istanbul", "Roseau", "Conakry", "İzmir", "Abha", "Ab",
	"A", "Zürich", "São Paulo",
}

// genMeasurements builds n random records; the last one has no trailing
// newline unless trailingNewline is set.
func genMeasurements(seed int64, n int, trailingNewline bool) []byte {
	rng := rand.New(rand.NewSource(seed))
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		if i != 0 {
			buf.WriteByte('\n')
		}
		name := testStations[rng.Intn(len(testStations))]
		v := rng.Intn(1999) - 999
		buf.WriteString(name)
		buf.WriteByte(';')
		buf.Write(FormatTenths(nil, int64(v)))
	}
	if trailingNewline && n > 0 {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func solveBytes(t testing.TB, data []byte, opts Options) (Report, error) {
	t.Helper()
	return Solve(context.Background(), bytesSource(data), opts)
}

type bytesSource []byte

func (b bytesSource) Bytes() []byte { return b }

func splitEntries(s string) string {
	return strings.ReplaceAll(s, ", ", "\n")
}

func assertReport(t testing.TB, got Report, want string) {
	t.Helper()
	if s := got.String(); s != want {
		t.Errorf("report mismatch:\n%s", diff.LineDiff(splitEntries(want), splitEntries(s)))
	}
}

func formatStat(st StationStat) string {
	return fmt.Sprintf("count=%d sum=%d min=%d max=%d", st.Count, st.Sum, st.Min, st.Max)
}
