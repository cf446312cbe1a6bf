// Package bloom provides the identity deduplication index, a Bloom filter
// fronting an exact seen-set.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/harvestkit/harvest"
)

// Sizing defaults for a typical run. The exact set is authoritative;
// the filter only short-circuits negative lookups, so a bad estimate
// costs speed, never correctness.
const (
	defaultExpectedItems     = 10000
	defaultFalsePositiveRate = 0.01
)

var _ harvest.SeenIndex = (*Index)(nil)

// Index tracks accepted identity values. Matching is exact and
// case-sensitive; the Bloom filter is consulted first so the common
// "never seen" case skips the map lookup.
type Index struct {
	filter *bloom.BloomFilter
	exact  map[string]struct{}
}

// NewIndex creates an Index sized for the default expected run volume.
func NewIndex() *Index {
	return NewIndexWithEstimates(defaultExpectedItems, defaultFalsePositiveRate)
}

// NewIndexWithEstimates creates an Index sized for n expected identity values
// with the given false positive rate.
func NewIndexWithEstimates(n uint, fpRate float64) *Index {
	return &Index{
		filter: bloom.NewWithEstimates(n, fpRate),
		exact:  make(map[string]struct{}),
	}
}

// Contains reports whether the identity value has already been accepted.
func (i *Index) Contains(identity string) bool {
	if !i.filter.TestString(identity) {
		return false
	}
	_, ok := i.exact[identity]
	return ok
}

// Add marks the identity value as accepted.
func (i *Index) Add(identity string) {
	i.filter.AddString(identity)
	i.exact[identity] = struct{}{}
}

// Len returns the number of accepted identity values.
func (i *Index) Len() int {
	return len(i.exact)
}
