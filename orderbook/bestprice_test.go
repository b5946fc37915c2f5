package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmapTracker_EmptyDefaults(t *testing.T) {
	tr := newBitmapTracker(1000)
	assert.Zero(t, tr.BestBid())
	assert.Equal(t, uint32(1000), tr.BestAsk())
}

func TestBitmapTracker_ActivateTracksMaxMin(t *testing.T) {
	tr := newBitmapTracker(1000)

	tr.Activate(Buy, 100)
	tr.Activate(Buy, 150)
	tr.Activate(Buy, 120)
	assert.Equal(t, uint32(150), tr.BestBid())

	tr.Activate(Sell, 300)
	tr.Activate(Sell, 250)
	tr.Activate(Sell, 280)
	assert.Equal(t, uint32(250), tr.BestAsk())
}

func TestBitmapTracker_RecomputeAfterDeactivate(t *testing.T) {
	tr := newBitmapTracker(1000)
	tr.Activate(Buy, 100)
	tr.Activate(Buy, 200)
	assert.Equal(t, uint32(200), tr.BestBid())

	tr.Deactivate(Buy, 200)
	assert.Equal(t, uint32(100), tr.RecomputeBestBid())
}

func TestBitmapTracker_RecomputeToEmptyDefaults(t *testing.T) {
	tr := newBitmapTracker(1000)
	tr.Activate(Sell, 500)
	tr.Deactivate(Sell, 500)

	assert.Equal(t, uint32(1000), tr.RecomputeBestAsk())
}

func TestBitmapTracker_WordBoundaryPrices(t *testing.T) {
	tr := newBitmapTracker(1000)
	tr.Activate(Buy, 63)
	tr.Activate(Buy, 64)
	tr.Activate(Buy, 127)
	tr.Activate(Buy, 128)

	assert.Equal(t, uint32(128), tr.BestBid())
	tr.Deactivate(Buy, 128)
	assert.Equal(t, uint32(127), tr.RecomputeBestBid())
}

func TestBitmapTracker_Reset(t *testing.T) {
	tr := newBitmapTracker(1000)
	tr.Activate(Buy, 100)
	tr.Activate(Sell, 200)

	tr.Reset()
	assert.Zero(t, tr.BestBid())
	assert.Equal(t, uint32(1000), tr.BestAsk())
}
