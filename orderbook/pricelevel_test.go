package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceLevel_AppendAndFront(t *testing.T) {
	var l PriceLevel
	assert.True(t, l.Empty())

	l.append(100, 1, 5)
	l.append(100, 2, 3)

	assert.Equal(t, uint32(100), l.Price())
	assert.Equal(t, uint32(8), l.TotalQuantity())
	assert.Equal(t, 2, l.Len())

	id, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, uint64(1), id)
}

func TestPriceLevel_PopFrontIsFIFO(t *testing.T) {
	var l PriceLevel
	l.append(100, 1, 5)
	l.append(100, 2, 3)
	l.append(100, 3, 1)

	id, ok := l.popFront()
	require.True(t, ok)
	assert.Equal(t, uint64(1), id)

	id, ok = l.popFront()
	require.True(t, ok)
	assert.Equal(t, uint64(2), id)

	assert.Equal(t, 1, l.Len())
}

func TestPriceLevel_EraseByID(t *testing.T) {
	var l PriceLevel
	l.append(100, 1, 5)
	l.append(100, 2, 3)
	l.append(100, 3, 1)

	found := l.eraseByID(2)
	assert.True(t, found)
	assert.Equal(t, 2, l.Len())

	id, _ := l.popFront()
	assert.Equal(t, uint64(1), id)
	id, _ = l.popFront()
	assert.Equal(t, uint64(3), id)

	assert.False(t, l.eraseByID(99))
}

func TestPriceLevel_CompactReclaimsConsumedPrefix(t *testing.T) {
	var l PriceLevel
	for i := uint64(1); i <= 10; i++ {
		l.append(100, i, 1)
	}
	for i := 0; i < 6; i++ {
		l.popFront()
	}

	assert.Equal(t, 0, l.head)
	assert.Equal(t, 4, len(l.orderIDs))
}

func TestPriceLevel_ResetRestoresZeroState(t *testing.T) {
	var l PriceLevel
	l.append(100, 1, 5)
	l.popFront()
	l.reset()

	assert.Zero(t, l.Price())
	assert.Zero(t, l.TotalQuantity())
	assert.True(t, l.Empty())
}

func TestPriceLevelIndex_AtIsStableAcrossCalls(t *testing.T) {
	idx := newPriceLevelIndex(1000)
	idx.At(100).append(100, 1, 5)

	assert.Equal(t, uint32(5), idx.At(100).TotalQuantity())
	assert.True(t, idx.At(200).Empty())
}

func TestPriceLevelIndex_Reset(t *testing.T) {
	idx := newPriceLevelIndex(1000)
	idx.At(100).append(100, 1, 5)
	idx.At(200).append(200, 2, 3)

	idx.Reset()

	assert.True(t, idx.At(100).Empty())
	assert.True(t, idx.At(200).Empty())
}
