package sysstats

import (
	"sync"
	"sync/atomic"
)

// Registry is the live counter table: for every kind of its catalog it holds
// the number of resources currently in use and the highest value that number
// has reached. It is safe for concurrent use.
// A process normally builds one registry at startup and hands it, as a
// Recorder or Inspector, to whichever component needs it.
type Registry struct {
	catalog *Catalog
	cfg     *registryConfig
	logger  logger

	inUse []atomic.Int64
	high  []atomic.Int64
	// external sources ordered by kind, fixed at construction
	sources []boundSource
	// invariant violations reported so far, per kind
	reports []atomic.Int32

	mu sync.RWMutex
}

type boundSource struct {
	kind   Kind
	source Source
}

// NewRegistry constructs a zeroed registry for the kinds of c.
// Accepts optional functional options to customize behavior.
func NewRegistry(c *Catalog, opts ...RegistryOption) *Registry {
	if c == nil {
		panic("sysstats: nil catalog")
	}
	cfg := &registryConfig{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	l := cfg.logger
	if l == nil {
		l = newNopLogger()
	}

	r := &Registry{
		catalog: c,
		cfg:     cfg,
		logger:  l,
		inUse:   make([]atomic.Int64, c.Len()),
		high:    make([]atomic.Int64, c.Len()),
		reports: make([]atomic.Int32, c.Len()),
	}
	r.sources = r.bindSources(cfg.sources)

	l.Debugf("sysstats: registry ready with %d kinds, %d external sources", c.Len(), len(r.sources))
	return r
}

// bindSources resolves labeled sources against the catalog. The result holds at
// most one source per kind, ordered by kind.
func (r *Registry) bindSources(in []labeledSource) []boundSource {
	byKind := make(map[Kind]Source, len(in))
	for _, ls := range in {
		k, ok := r.catalog.Kind(ls.label)
		if !ok {
			r.logger.Debugf("sysstats: no kind %q in catalog, source skipped", ls.label)
			continue
		}
		if _, dup := byKind[k]; dup {
			r.logger.Debugf("sysstats: source for %q replaced", ls.label)
		}
		byKind[k] = ls.source
	}

	out := make([]boundSource, 0, len(byKind))
	for k := Kind(0); int(k) < r.catalog.Len(); k++ {
		if s, ok := byKind[k]; ok {
			out = append(out, boundSource{kind: k, source: s})
		}
	}
	return out
}

// Catalog returns the catalog the registry was built for.
func (r *Registry) Catalog() *Catalog { return r.catalog }

// Label returns the label of k.
func (r *Registry) Label(k Kind) string { return r.catalog.Label(k) }

// Increment records the acquisition of one resource of kind k and raises the
// high watermark if the new count exceeds it.
func (r *Registry) Increment(k Kind) {
	if r.cfg.consistentSnapshots {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	raise(&r.high[k], r.inUse[k].Add(1))
}

// Decrement records the release of one resource of kind k. The high watermark
// is left alone. Releasing more than was acquired is a caller bug; it is
// reported as an invariant violation but the counter still moves.
func (r *Registry) Decrement(k Kind) {
	if r.cfg.consistentSnapshots {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	if r.inUse[k].Add(-1) < 0 {
		r.reportInvariantViolation("negative_in_use", k)
	}
}

// ResetHighWatermarks lowers every high watermark to the current in-use count
// of its kind, starting a new observation period.
func (r *Registry) ResetHighWatermarks() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.high {
		r.high[i].Store(r.inUse[i].Load())
		// mutators do not hold mu by default; an increment racing the store
		// must not leave the watermark below the count
		raise(&r.high[i], r.inUse[i].Load())
	}
	r.logger.Debugf("sysstats: high watermarks reset")
}

// reportInvariantViolation reports caller logic errors such as releasing more
// resources than were acquired. In release builds it logs up to 10 times per
// kind; in debug builds (or under race detector) it panics to catch bugs early.
func (r *Registry) reportInvariantViolation(what string, k Kind) {
	const maxReports = 10
	label := r.catalog.Label(k)

	// In debug builds, fail fast.
	if isDebugBuild() {
		panic("[sysstats] invariant violation: " + what + " for " + label)
	}

	if r.reports[k].Add(1) > maxReports {
		return
	}
	r.logger.Warnf("[sysstats] invariant violation: %s for %s", what, label)
}

// isDebugBuild reports whether we're in a "debug" or "race" build.
// This uses Go's built-in race detector flag or a debug build tag.
func isDebugBuild() bool {
	return raceBuild || debugBuild
}
