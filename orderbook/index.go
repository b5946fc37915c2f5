package orderbook

// OrderIndex maps an order identifier to its Order record. It is the
// sole owner of Order storage: price-level FIFOs hold only identifiers,
// weak references by design, so a level entry can outlive the order it
// names (a tombstoned-but-not-yet-pruned order) without dangling.
//
// Average O(1) lookup/insert/remove, no ordering guarantees, backed by
// a plain Go map — the corpus does not reach for a specialized
// concurrent or ordered map here because the core is explicitly
// single-threaded and order identity has no useful order.
type OrderIndex struct {
	orders map[uint64]*Order
}

func newOrderIndex() *OrderIndex {
	return &OrderIndex{orders: make(map[uint64]*Order)}
}

// Get returns the order for id, or nil if none is indexed (including
// after it has been erased).
func (idx *OrderIndex) Get(id uint64) *Order {
	return idx.orders[id]
}

// Insert adds or overwrites the record for order.ID.
func (idx *OrderIndex) Insert(order *Order) {
	idx.orders[order.ID] = order
}

// Remove erases the record for id, if present.
func (idx *OrderIndex) Remove(id uint64) {
	delete(idx.orders, id)
}

// Len returns the number of indexed records, live and tombstoned.
func (idx *OrderIndex) Len() int {
	return len(idx.orders)
}

// Clear erases every record.
func (idx *OrderIndex) Clear() {
	idx.orders = make(map[uint64]*Order)
}

// CleanupDeleted erases every tombstoned record and returns how many
// were pruned. Never required for correctness of matching (stale-order
// skip in the matching loop tolerates a tombstoned or missing head);
// this only bounds index size over time.
func (idx *OrderIndex) CleanupDeleted() int {
	return idx.CleanupDeletedWithAudit(nil)
}

// CleanupDeletedWithAudit behaves like CleanupDeleted, additionally
// invoking audit with a snapshot of each record just before it is
// erased. audit may be nil, in which case this is identical to
// CleanupDeleted. The snapshot is independent of the record being
// erased, so audit may retain it.
func (idx *OrderIndex) CleanupDeletedWithAudit(audit func(Order)) int {
	pruned := 0
	for id, o := range idx.orders {
		if o.Deleted {
			if audit != nil {
				audit(o.Snapshot())
			}
			delete(idx.orders, id)
			pruned++
		}
	}
	return pruned
}
