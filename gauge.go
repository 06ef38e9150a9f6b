package sysstats

import "sync/atomic"

// PoolGauge is a thread-safe in-use counter with a high watermark, meant for
// subsystems that keep their own usage statistics (timer pools, buffer pools)
// and expose them to a registry as a Source.
type PoolGauge struct {
	inUse atomic.Int64
	high  atomic.Int64
}

// Acquire counts one more object in use.
func (g *PoolGauge) Acquire() { raise(&g.high, g.inUse.Add(1)) }

// Release counts one object returned to the pool.
func (g *PoolGauge) Release() { g.inUse.Add(-1) }

// ResourceStats implements Source.
func (g *PoolGauge) ResourceStats() (int64, int64) {
	return g.inUse.Load(), g.high.Load()
}

// raise lifts hw to v unless it is already at least v.
func raise(hw *atomic.Int64, v int64) {
	for {
		cur := hw.Load()
		if v <= cur || hw.CompareAndSwap(cur, v) {
			return
		}
	}
}

func load(vals []atomic.Int64) []int64 {
	out := make([]int64, len(vals))
	for i := range vals {
		out[i] = vals[i].Load()
	}
	return out
}
