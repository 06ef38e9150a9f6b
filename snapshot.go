package sysstats

import "slices"

// Snapshot is an immutable copy of a registry's counter table at one point in
// time. It shares nothing mutable with the registry; accessors that return
// slices return copies.
// The zero Snapshot has no kinds.
type Snapshot struct {
	catalog *Catalog
	inUse   []int64
	high    []int64
}

// Entry is one kind's row of a Snapshot.
type Entry struct {
	Kind          Kind
	Label         string
	InUse         int64
	HighWatermark int64
}

// Len returns the number of kinds in the snapshot.
func (s Snapshot) Len() int { return len(s.inUse) }

// Catalog returns the catalog the snapshot was taken against.
func (s Snapshot) Catalog() *Catalog { return s.catalog }

// Label returns the label of k.
func (s Snapshot) Label(k Kind) string { return s.catalog.Label(k) }

// InUse returns the in-use value recorded for k.
func (s Snapshot) InUse(k Kind) int64 { return s.inUse[k] }

// HighWatermark returns the high watermark recorded for k.
func (s Snapshot) HighWatermark(k Kind) int64 { return s.high[k] }

// InUseAll returns all in-use values in kind order.
func (s Snapshot) InUseAll() []int64 { return slices.Clone(s.inUse) }

// HighWatermarksAll returns all high watermarks in kind order.
func (s Snapshot) HighWatermarksAll() []int64 { return slices.Clone(s.high) }

// Entries returns one Entry per kind, in kind order.
func (s Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.inUse))
	for i := range s.inUse {
		k := Kind(i)
		out[i] = Entry{Kind: k, Label: s.catalog.Label(k), InUse: s.inUse[i], HighWatermark: s.high[i]}
	}
	return out
}

// Growing returns the kinds whose in-use value is positive. On a snapshot
// produced by Difference these are the kinds that flagged a leak.
func (s Snapshot) Growing() []Kind {
	var out []Kind
	for i, v := range s.inUse {
		if v > 0 {
			out = append(out, Kind(i))
		}
	}
	return out
}

// Difference returns after minus before, kind by kind, for both the in-use
// values and the high watermarks. The boolean is true if any in-use delta is
// positive, i.e. more resources of some kind were held at after than at
// before. Watermark deltas are informational and never set it.
//
// Only the net change between the two instants is visible: a kind that went
// up and came back down in between shows a zero delta.
//
// Both snapshots must come from the same catalog. Comparing snapshots of
// different shapes panics in debug builds; otherwise only the leading kinds
// whose labels match in both snapshots are compared.
func Difference(before, after Snapshot) (Snapshot, bool) {
	n := len(after.inUse)
	if !sameShape(before, after) {
		if isDebugBuild() {
			panic("[sysstats] invariant violation: snapshot shape mismatch")
		}
		n = matchingPrefix(before, after)
	}

	d := Snapshot{
		catalog: after.catalog,
		inUse:   make([]int64, n),
		high:    make([]int64, n),
	}
	leak := false
	for i := 0; i < n; i++ {
		d.inUse[i] = after.inUse[i] - before.inUse[i]
		d.high[i] = after.high[i] - before.high[i]
		if d.inUse[i] > 0 {
			leak = true
		}
	}
	return d, leak
}

// matchingPrefix returns how many leading kinds line up in a and b.
func matchingPrefix(a, b Snapshot) int {
	n := min(len(a.inUse), len(b.inUse))
	if a.catalog == nil || b.catalog == nil || a.catalog == b.catalog {
		return n
	}
	for i := 0; i < n; i++ {
		if a.catalog.labels[i] != b.catalog.labels[i] {
			return i
		}
	}
	return n
}

func sameShape(a, b Snapshot) bool {
	if len(a.inUse) != len(b.inUse) {
		return false
	}
	if a.catalog == b.catalog || a.catalog == nil || b.catalog == nil {
		return true
	}
	return slices.Equal(a.catalog.labels, b.catalog.labels)
}
