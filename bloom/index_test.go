package bloom_test

import (
	"fmt"
	"testing"

	"github.com/harvestkit/harvest"
	"github.com/harvestkit/harvest/bloom"
	"github.com/stretchr/testify/assert"
)

// Ensure Index implements harvest.SeenIndex at compile time.
var _ harvest.SeenIndex = (*bloom.Index)(nil)

func TestIndex_ContainsAndAdd(t *testing.T) {
	t.Parallel()

	idx := bloom.NewIndex()

	assert.False(t, idx.Contains("Campus Expands"))

	idx.Add("Campus Expands")

	assert.True(t, idx.Contains("Campus Expands"))
	assert.Equal(t, 1, idx.Len())
}

func TestIndex_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	idx := bloom.NewIndex()
	idx.Add("Campus Expands")

	// Case and whitespace differences are distinct values.
	assert.False(t, idx.Contains("campus expands"))
	assert.False(t, idx.Contains("Campus Expands "))
	assert.False(t, idx.Contains(" Campus Expands"))
}

func TestIndex_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	idx := bloom.NewIndex()
	idx.Add("A")
	idx.Add("A")

	assert.True(t, idx.Contains("A"))
	assert.Equal(t, 1, idx.Len())
}

func TestIndex_NoFalseNegativesUnderLoad(t *testing.T) {
	t.Parallel()

	idx := bloom.NewIndexWithEstimates(100, 0.01)

	// Overfill past the estimate; the exact set must stay authoritative.
	for i := 0; i < 1000; i++ {
		idx.Add(fmt.Sprintf("identity-%d", i))
	}
	for i := 0; i < 1000; i++ {
		assert.True(t, idx.Contains(fmt.Sprintf("identity-%d", i)))
	}
	assert.Equal(t, 1000, idx.Len())
}
