/*
Package sysstats provides a resource-usage registry for an embedded networking stack.

# Overview

The registry keeps, for a fixed and ordered set of resource kinds (packet buffers,
timers, endpoints, exchange contexts, connections, WDM objects, ...), the number of
instances currently in use and the highest number ever in use. Resource owners bump
the counters next to their own acquire/release code; diagnostics take snapshots and
compare them to find leaks.

The library is organized around a few small pieces:

1. Catalog: the immutable, ordered list of kind labels. A Kind is an index into it.
StackCatalog builds the standard catalog from Features, which stand in for the
stack's build switches; ParseFeatures reads them from YAML.

2. Recorder: the mutation surface handed to resource owners.

	type Recorder interface {
	  Increment(k Kind)
	  Decrement(k Kind)
	}

3. Inspector: the read-only query surface.

	type Inspector interface {
	  Labels() []string
	  InUse() []int64
	  HighWatermarks() []int64
	  TakeSnapshot() Snapshot
	}

4. Source: values owned by another subsystem (a timer pool, an allocator pool) that
replace the table values of their kind in every snapshot. PoolGauge is a ready-made
Source for pools that count themselves.

# Reference implementation

Registry implements Recorder and Inspector with one atomic counter and one atomic
watermark per kind. Increment raises the watermark with a CAS loop right after the
counter moves; Decrement never touches it. TakeSnapshot copies both arrays and only
then queries the bound sources. Each element is read atomically, but without
WithConsistentSnapshots different kinds may be read at slightly different instants.

Difference subtracts two snapshots kind by kind and reports a leak when any in-use
delta is positive. Watermark deltas are informational.

Decrementing below zero and comparing snapshots of different catalogs are caller
bugs. In debug and race builds (controlled via build tags) they panic to fail fast;
in other builds the registry logs a warning, at most 10 times per kind, and carries on.

Examples

	r := sysstats.NewRegistry(sysstats.StackCatalog(sysstats.DefaultFeatures()),
	    sysstats.WithTimerSource(timerPool),
	    sysstats.WithLogger(zapLogger.Sugar()),
	)
	conns, _ := r.Catalog().Kind(sysstats.LabelConnections)

	before := r.TakeSnapshot()
	r.Increment(conns)
	diff, leak := sysstats.Difference(before, r.TakeSnapshot())
	for _, k := range diff.Growing() {
	    _ = diff.Label(k) // leak == true, k == conns
	}

# Build and test

- Run unit tests:

	go test ./...

- Run with the race detector (enables stricter invariant behavior):

	go test -race ./...

- Enable debug build tag (debug invariants enabled):

	go test -tags=debug ./...

# Notes

- Snapshots never alias the registry; slices returned by accessors are copies.

- The registry is not a telemetry pipeline. Rendering snapshots for humans or log
sinks is left to the caller; Snapshot.Entries gives them the rows in kind order.
*/
package sysstats
