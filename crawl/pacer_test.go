package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/harvestkit/harvest/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalPacer_FirstWaitIsImmediate(t *testing.T) {
	t.Parallel()

	p := crawl.NewIntervalPacer(time.Hour)

	start := time.Now()
	err := p.Wait(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestIntervalPacer_SecondWaitBlocksForInterval(t *testing.T) {
	t.Parallel()

	p := crawl.NewIntervalPacer(50 * time.Millisecond)
	require.NoError(t, p.Wait(context.Background()))

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestIntervalPacer_RespectsContextCancellation(t *testing.T) {
	t.Parallel()

	p := crawl.NewIntervalPacer(time.Hour)
	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := p.Wait(ctx)

	require.Error(t, err)
}
