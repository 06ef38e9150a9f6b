package sysstats

type registryConfig struct {
	logger logger
	// bound in option order; a later binding for the same label wins
	sources []labeledSource
	// when true, mutators share an RWMutex that TakeSnapshot holds exclusively
	// during the copy. Default: false (per-kind best effort).
	consistentSnapshots bool
}

type labeledSource struct {
	label  string
	source Source
}

// RegistryOption configures a Registry constructed by NewRegistry.
type RegistryOption func(*registryConfig)

// WithLogger sets the logger used for invariant violations and diagnostics,
// typically a *zap.SugaredLogger. The default discards everything.
func WithLogger(l logger) RegistryOption {
	return func(cfg *registryConfig) { cfg.logger = l }
}

// WithSource binds an external stat source to the kind with the given label.
// If the catalog has no such kind (the subsystem is not built in) the binding
// is skipped. A nil source is ignored.
func WithSource(label string, s Source) RegistryOption {
	return func(cfg *registryConfig) {
		if s == nil {
			return
		}
		cfg.sources = append(cfg.sources, labeledSource{label: label, source: s})
	}
}

// WithTimerSource binds the timer pool statistics to LabelTimers.
func WithTimerSource(s Source) RegistryOption {
	return WithSource(LabelTimers, s)
}

// WithPacketBufferSource binds allocator pool statistics to LabelPacketBufs.
func WithPacketBufferSource(s Source) RegistryOption {
	return WithSource(LabelPacketBufs, s)
}

// WithConsistentSnapshots makes TakeSnapshot copy the whole table at a single
// instant. Increment and Decrement then take a shared lock, which costs a little
// under heavy contention.
func WithConsistentSnapshots() RegistryOption {
	return func(cfg *registryConfig) { cfg.consistentSnapshots = true }
}
