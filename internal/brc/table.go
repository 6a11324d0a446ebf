package brc

import (
	"bytes"

	"github.com/dolthub/swiss"
	"github.com/zeebo/xxh3"
)

// MaxStations is the upper bound on distinct station names used to pre-size tables.
const MaxStations = 10_000

type entry struct {
	key  []byte
	stat StationStat
	next *entry
}

// Table maps station names to their running aggregates for a single worker.
// It is not safe for concurrent use. Keys are borrowed from the caller and
// must stay valid and unmodified for the lifetime of the table.
type Table struct {
	m *swiss.Map[uint64, *entry]
	n int
}

func NewTable(capacity int) *Table {
	if capacity < 64 {
		capacity = 64
	}
	return &Table{m: swiss.NewMap[uint64, *entry](uint32(capacity))}
}

// Fold adds one measurement for key, creating the station on first sight.
func (t *Table) Fold(key []byte, v int32) {
	h := xxh3.Hash(key)
	head, _ := t.m.Get(h)
	for e := head; e != nil; e = e.next {
		if bytes.Equal(e.key, key) {
			e.stat.Fold(v)
			return
		}
	}
	t.m.Put(h, &entry{key: key, stat: NewStationStat(v), next: head})
	t.n++
}

// Get returns the aggregate for key, if the station has been seen.
func (t *Table) Get(key []byte) (StationStat, bool) {
	head, _ := t.m.Get(xxh3.Hash(key))
	for e := head; e != nil; e = e.next {
		if bytes.Equal(e.key, key) {
			return e.stat, true
		}
	}
	return StationStat{}, false
}

// Len returns the number of distinct stations.
func (t *Table) Len() int { return t.n }

// Each calls fn for every station in unspecified order.
func (t *Table) Each(fn func(key []byte, st StationStat)) {
	t.m.Iter(func(_ uint64, head *entry) bool {
		for e := head; e != nil; e = e.next {
			fn(e.key, e.stat)
		}
		return false
	})
}
