package sysstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifference_SelfIsZero(t *testing.T) {
	r := NewRegistry(newTestCatalog(), WithSource("d", fixed(2, 7)))
	r.Increment(kindA)
	r.Increment(kindB)
	r.Decrement(kindB)
	s := r.TakeSnapshot()

	d, leak := Difference(s, s)
	assert.False(t, leak)
	assert.Equal(t, []int64{0, 0, 0, 0}, d.InUseAll())
	assert.Equal(t, []int64{0, 0, 0, 0}, d.HighWatermarksAll())
	assert.Empty(t, d.Growing())
}

func TestDifference_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		setup    func(r *Registry)
		between  func(r *Registry)
		wantIn   []int64
		wantHigh []int64
		wantLeak bool
	}{
		{
			name: "release_is_not_a_leak",
			setup: func(r *Registry) {
				r.Increment(kindA)
				r.Increment(kindA)
				r.Increment(kindA)
				r.Increment(kindB)
			},
			between:  func(r *Registry) { r.Decrement(kindA) },
			wantIn:   []int64{-1, 0, 0, 0},
			wantHigh: []int64{0, 0, 0, 0},
			wantLeak: false,
		},
		{
			name:  "held_resources_are_a_leak",
			setup: func(*Registry) {},
			between: func(r *Registry) {
				r.Increment(kindC)
				r.Increment(kindC)
			},
			wantIn:   []int64{0, 0, 2, 0},
			wantHigh: []int64{0, 0, 2, 0},
			wantLeak: true,
		},
		{
			name:  "transient_spike_is_invisible",
			setup: func(r *Registry) { r.Increment(kindD) },
			between: func(r *Registry) {
				r.Increment(kindD)
				r.Increment(kindD)
				r.Decrement(kindD)
				r.Decrement(kindD)
			},
			wantIn:   []int64{0, 0, 0, 0},
			wantHigh: []int64{0, 0, 0, 2},
			wantLeak: false,
		},
		{
			name:  "watermark_growth_alone_is_not_a_leak",
			setup: func(*Registry) {},
			between: func(r *Registry) {
				r.Increment(kindB)
				r.Decrement(kindB)
			},
			wantIn:   []int64{0, 0, 0, 0},
			wantHigh: []int64{0, 1, 0, 0},
			wantLeak: false,
		},
		{
			name:  "mixed_growth_and_release",
			setup: func(r *Registry) { r.Increment(kindA) },
			between: func(r *Registry) {
				r.Decrement(kindA)
				r.Increment(kindB)
			},
			wantIn:   []int64{-1, 1, 0, 0},
			wantHigh: []int64{0, 1, 0, 0},
			wantLeak: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry(newTestCatalog())
			tc.setup(r)
			before := r.TakeSnapshot()
			tc.between(r)
			after := r.TakeSnapshot()

			d, leak := Difference(before, after)
			assert.Equal(t, tc.wantLeak, leak)
			assert.Equal(t, tc.wantIn, d.InUseAll())
			assert.Equal(t, tc.wantHigh, d.HighWatermarksAll())
			assert.Same(t, r.Catalog(), d.Catalog())
		})
	}
}

func TestDifference_DoesNotAliasInputs(t *testing.T) {
	r := NewRegistry(newTestCatalog())
	before := r.TakeSnapshot()
	r.Increment(kindA)
	after := r.TakeSnapshot()

	d, _ := Difference(before, after)
	assert.Equal(t, int64(1), d.InUse(kindA))
	assert.Equal(t, int64(0), before.InUse(kindA))
	assert.Equal(t, int64(1), after.InUse(kindA))
}

func TestSnapshot_GrowingAndEntries(t *testing.T) {
	r := NewRegistry(newTestCatalog())
	before := r.TakeSnapshot()
	r.Increment(kindB)
	r.Increment(kindD)
	r.Increment(kindD)
	after := r.TakeSnapshot()

	d, leak := Difference(before, after)
	require.True(t, leak)
	assert.Equal(t, []Kind{kindB, kindD}, d.Growing())

	entries := after.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, Entry{Kind: kindD, Label: "d", InUse: 2, HighWatermark: 2}, entries[kindD])
	assert.Equal(t, Entry{Kind: kindA, Label: "a"}, entries[kindA])
}

func TestSnapshot_Zero(t *testing.T) {
	var s Snapshot
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Entries())

	d, leak := Difference(s, s)
	assert.False(t, leak)
	assert.Equal(t, 0, d.Len())
}

func TestDifference_ShapeMismatch(t *testing.T) {
	small := NewRegistry(MustCatalog("a", "b"))
	large := NewRegistry(newTestCatalog())
	small.Increment(kindA)
	large.Increment(kindA)
	large.Increment(kindA)
	large.Increment(kindC)
	before, after := small.TakeSnapshot(), large.TakeSnapshot()

	if isDebugBuild() {
		assert.Panics(t, func() { Difference(before, after) })
		return
	}

	d, leak := Difference(before, after)
	assert.True(t, leak)
	assert.Equal(t, []int64{1, 0}, d.InUseAll())
}

func TestDifference_SameLengthDifferentLabels(t *testing.T) {
	x := NewRegistry(MustCatalog("a", "b")).TakeSnapshot()
	y := NewRegistry(MustCatalog("a", "c")).TakeSnapshot()
	z := NewRegistry(MustCatalog("a", "b")).TakeSnapshot()

	assert.False(t, sameShape(x, y))
	assert.True(t, sameShape(x, z), "equal label lists from different catalogs match")
}

func TestDifference_LabelMismatchComparesMatchingPrefix(t *testing.T) {
	r1 := NewRegistry(MustCatalog("a", "b", "c"))
	r2 := NewRegistry(MustCatalog("a", "x", "c"))
	r1.Increment(kindA)
	r2.Increment(kindA)
	r2.Increment(kindA)
	r2.Increment(kindB)
	before, after := r1.TakeSnapshot(), r2.TakeSnapshot()

	if isDebugBuild() {
		assert.Panics(t, func() { Difference(before, after) })
		return
	}

	d, leak := Difference(before, after)
	assert.True(t, leak)
	// "b" and "x" are different kinds, so nothing from index 1 on is compared
	assert.Equal(t, []int64{1}, d.InUseAll())
	assert.Equal(t, []Kind{kindA}, d.Growing())
}

func TestMatchingPrefix(t *testing.T) {
	abc := NewRegistry(MustCatalog("a", "b", "c")).TakeSnapshot()
	ab := NewRegistry(MustCatalog("a", "b")).TakeSnapshot()
	xbc := NewRegistry(MustCatalog("x", "b", "c")).TakeSnapshot()

	assert.Equal(t, 2, matchingPrefix(abc, ab))
	assert.Equal(t, 0, matchingPrefix(abc, xbc))
	assert.Equal(t, 3, matchingPrefix(abc, abc))
	assert.Equal(t, 0, matchingPrefix(Snapshot{}, abc))
}
