package sysstats

// Inspector is the read-only query surface used by diagnostics and reporting.
// All slices are freshly allocated, have one entry per catalog kind, and are
// indexed by Kind.
// Snapshot semantics: best-effort at call time unless the registry was built
// WithConsistentSnapshots.
type Inspector interface {
	Labels() []string
	InUse() []int64
	HighWatermarks() []int64
	TakeSnapshot() Snapshot
}

var (
	_ Recorder  = (*Registry)(nil)
	_ Inspector = (*Registry)(nil)
)
