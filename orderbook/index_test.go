package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderIndex_InsertGetRemove(t *testing.T) {
	idx := newOrderIndex()
	assert.Nil(t, idx.Get(1))

	idx.Insert(&Order{ID: 1, Side: Buy, Price: 100, Quantity: 5})
	assert.Equal(t, uint32(5), idx.Get(1).Quantity)
	assert.Equal(t, 1, idx.Len())

	idx.Remove(1)
	assert.Nil(t, idx.Get(1))
	assert.Equal(t, 0, idx.Len())
}

func TestOrderIndex_CleanupDeleted(t *testing.T) {
	idx := newOrderIndex()
	idx.Insert(&Order{ID: 1, Deleted: true})
	idx.Insert(&Order{ID: 2, Deleted: false})
	idx.Insert(&Order{ID: 3, Deleted: true})

	pruned := idx.CleanupDeleted()
	assert.Equal(t, 2, pruned)
	assert.Equal(t, 1, idx.Len())
	assert.NotNil(t, idx.Get(2))
}

func TestOrderIndex_CleanupDeletedWithAudit(t *testing.T) {
	idx := newOrderIndex()
	idx.Insert(&Order{ID: 1, Price: 100, Quantity: 5, Deleted: true})
	idx.Insert(&Order{ID: 2, Price: 200, Quantity: 7, Deleted: false})
	idx.Insert(&Order{ID: 3, Price: 300, Quantity: 9, Deleted: true})

	var audited []Order
	pruned := idx.CleanupDeletedWithAudit(func(o Order) {
		audited = append(audited, o)
	})

	assert.Equal(t, 2, pruned)
	assert.Len(t, audited, 2)
	seen := map[uint64]uint32{}
	for _, o := range audited {
		seen[o.ID] = o.Quantity
	}
	assert.Equal(t, uint32(5), seen[1])
	assert.Equal(t, uint32(9), seen[3])
}

func TestOrderIndex_CleanupDeletedWithAudit_NilAuditIsCleanupDeleted(t *testing.T) {
	idx := newOrderIndex()
	idx.Insert(&Order{ID: 1, Deleted: true})

	pruned := idx.CleanupDeletedWithAudit(nil)
	assert.Equal(t, 1, pruned)
	assert.Equal(t, 0, idx.Len())
}

func TestOrderIndex_Clear(t *testing.T) {
	idx := newOrderIndex()
	idx.Insert(&Order{ID: 1})
	idx.Insert(&Order{ID: 2})

	idx.Clear()
	assert.Equal(t, 0, idx.Len())
}

func TestOrder_Snapshot_IsIndependentCopy(t *testing.T) {
	o := &Order{ID: 1, Side: Buy, Price: 100, Quantity: 10}
	snap := o.Snapshot()

	o.Quantity = 0
	assert.Equal(t, uint32(10), snap.Quantity)
}
