package sysstats

// Recorder is the mutation surface handed to resource owners.
// Owners call Increment when they acquire a resource and Decrement when they
// release it, usually next to the acquire/release code itself.
type Recorder interface {
	Increment(k Kind)
	Decrement(k Kind)
}

// Source reports usage for a kind whose source of truth lives in another
// subsystem, for example a timer pool. Snapshots taken by a registry replace
// the table values of that kind with what the source returns.
// Methods must be safe for concurrent use.
type Source interface {
	ResourceStats() (inUse, highWatermark int64)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (inUse, highWatermark int64)

// ResourceStats calls f.
func (f SourceFunc) ResourceStats() (int64, int64) { return f() }
