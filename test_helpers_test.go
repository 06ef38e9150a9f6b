package sysstats

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	kindA Kind = iota
	kindB
	kindC
	kindD
)

// test helper: a small catalog whose kinds are kindA..kindD.
func newTestCatalog() *Catalog {
	return MustCatalog("a", "b", "c", "d")
}

// test helper: registry over newTestCatalog that records every log entry.
func newObservedRegistry(t *testing.T, opts ...RegistryOption) (*Registry, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	opts = append([]RegistryOption{WithLogger(zap.New(core).Sugar())}, opts...)
	return NewRegistry(newTestCatalog(), opts...), logs
}
