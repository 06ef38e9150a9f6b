package sysstats

// Labels implements Inspector.Labels for Registry.
func (r *Registry) Labels() []string { return r.catalog.Labels() }

// InUse implements Inspector.InUse for Registry. Values come straight from the
// table; external sources are only consulted by TakeSnapshot.
func (r *Registry) InUse() []int64 { return load(r.inUse) }

// HighWatermarks implements Inspector.HighWatermarks for Registry.
func (r *Registry) HighWatermarks() []int64 { return load(r.high) }

// TakeSnapshot copies the counter table and then overwrites every kind that has
// an external source with the values the source reports now.
// Without WithConsistentSnapshots each kind is read atomically but kinds may
// come from slightly different instants while owners keep mutating the table.
func (r *Registry) TakeSnapshot() Snapshot {
	s := Snapshot{catalog: r.catalog}

	if r.cfg.consistentSnapshots {
		r.mu.Lock()
	}
	s.inUse = load(r.inUse)
	s.high = load(r.high)
	if r.cfg.consistentSnapshots {
		r.mu.Unlock()
	}

	// sources are queried strictly after the bulk copy
	for _, b := range r.sources {
		s.inUse[b.kind], s.high[b.kind] = b.source.ResourceStats()
	}
	return s
}
