package brc

// Merged holds the combined aggregate of every worker, keyed by station name.
type Merged map[string]StationStat

// Merge combines per-worker tables into one. The result does not depend on
// the number of tables or the order they are passed in.
func Merge(tables ...*Table) Merged {
	size := 0
	for _, t := range tables {
		size = max(size, t.Len())
	}
	m := make(Merged, size)
	for _, t := range tables {
		t.Each(func(key []byte, st StationStat) {
			m.Add(string(key), st)
		})
	}
	return m
}

// Add merges st into the aggregate for station.
func (m Merged) Add(station string, st StationStat) {
	cur := m[station]
	cur.Merge(st)
	m[station] = cur
}
