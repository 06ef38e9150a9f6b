package sysstats

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Kind identifies one tracked resource. It is an index into the Catalog the
// registry was built from and is only meaningful together with that catalog.
type Kind int

var (
	// ErrEmptyCatalog is returned when a catalog is built without labels.
	ErrEmptyCatalog = errors.New("sysstats: catalog has no kinds")
	// ErrEmptyLabel is returned for a label that is the empty string.
	ErrEmptyLabel = errors.New("sysstats: empty label")
	// ErrDuplicateLabel is returned for a label given more than once.
	ErrDuplicateLabel = errors.New("sysstats: duplicate label")
)

// Catalog is the fixed, ordered set of resource kinds a registry tracks.
// It is immutable once built and may be shared by any number of registries
// and snapshots.
type Catalog struct {
	labels []string
	index  map[string]Kind
}

// NewCatalog builds a catalog whose kinds are numbered in the order the labels
// are given. Every problem found is reported, combined into one error.
func NewCatalog(labels ...string) (*Catalog, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyCatalog
	}

	var err error
	index := make(map[string]Kind, len(labels))
	for i, l := range labels {
		if l == "" {
			err = multierr.Append(err, fmt.Errorf("%w at position %d", ErrEmptyLabel, i))
			continue
		}
		if prev, ok := index[l]; ok {
			err = multierr.Append(err, fmt.Errorf("%w %q at positions %d and %d", ErrDuplicateLabel, l, prev, i))
			continue
		}
		index[l] = Kind(i)
	}
	if err != nil {
		return nil, err
	}

	cp := make([]string, len(labels))
	copy(cp, labels)
	return &Catalog{labels: cp, index: index}, nil
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(labels ...string) *Catalog {
	c, err := NewCatalog(labels...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of kinds.
func (c *Catalog) Len() int { return len(c.labels) }

// Valid reports whether k belongs to the catalog.
func (c *Catalog) Valid(k Kind) bool { return k >= 0 && int(k) < len(c.labels) }

// Label returns the label of k.
func (c *Catalog) Label(k Kind) string { return c.labels[k] }

// Labels returns a copy of all labels in kind order.
func (c *Catalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Kind looks a kind up by label. The second result is false when the label is
// not part of the catalog, e.g. because the owning subsystem is not built in.
func (c *Catalog) Kind(label string) (Kind, bool) {
	k, ok := c.index[label]
	return k, ok
}
