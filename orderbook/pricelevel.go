package orderbook

// PriceLevel holds the FIFO of order identifiers resting at one price
// on one side, plus the cached aggregate quantity of that FIFO. The
// zero value is the "empty" state a level resets to when its last
// order leaves.
//
// order_ids is a weak-reference view: it stores identifiers only, never
// order pointers. The OrderIndex is the sole owner of Order records.
type PriceLevel struct {
	price         uint32
	orderIDs      []uint64
	head          int // index of the FIFO's logical front within orderIDs
	totalQuantity uint32
}

func (l *PriceLevel) reset() {
	l.price = 0
	l.orderIDs = l.orderIDs[:0]
	l.head = 0
	l.totalQuantity = 0
}

// Price is the price this level represents.
func (l *PriceLevel) Price() uint32 { return l.price }

// TotalQuantity is the cached sum of quantity across non-tombstoned
// resident orders, maintained incrementally by the matching engine.
func (l *PriceLevel) TotalQuantity() uint32 { return l.totalQuantity }

// Empty reports whether the level currently holds no order identifiers.
func (l *PriceLevel) Empty() bool { return l.head >= len(l.orderIDs) }

// Len returns the number of identifiers currently resident (including
// any not-yet-pruned tombstoned orders still occupying a FIFO slot).
func (l *PriceLevel) Len() int { return len(l.orderIDs) - l.head }

// Front returns the identifier at the head of the FIFO and true, or
// (0, false) if the level is empty.
func (l *PriceLevel) Front() (uint64, bool) {
	if l.Empty() {
		return 0, false
	}
	return l.orderIDs[l.head], true
}

// append pushes id to the tail of the FIFO, adds qty to the cached
// total, and sets the level's price if this is the first resident
// (price defaults to zero, matching the reset state, so any nonzero
// incoming price is adopted unconditionally on the first append after
// a reset).
func (l *PriceLevel) append(price uint32, id uint64, qty uint32) {
	if l.price == 0 {
		l.price = price
	}
	l.orderIDs = append(l.orderIDs, id)
	l.totalQuantity += qty
}

// popFront removes and returns the FIFO head. The caller is
// responsible for adjusting totalQuantity, since the amount to
// subtract depends on match accounting, not just presence in the FIFO.
func (l *PriceLevel) popFront() (uint64, bool) {
	id, ok := l.Front()
	if !ok {
		return 0, false
	}
	l.head++
	l.compact()
	return id, true
}

// compact reclaims the consumed prefix once it makes up more than half
// of the slice, so a hot price level does not grow its slice without
// bound under sustained matching.
func (l *PriceLevel) compact() {
	if l.head == len(l.orderIDs) {
		l.orderIDs = l.orderIDs[:0]
		l.head = 0
		return
	}
	if l.head > 0 && l.head*2 > len(l.orderIDs) {
		remaining := len(l.orderIDs) - l.head
		copy(l.orderIDs, l.orderIDs[l.head:])
		l.orderIDs = l.orderIDs[:remaining]
		l.head = 0
	}
}

// eraseByID scans the resident FIFO for id and removes it, preserving
// the relative order of the remaining identifiers. Linear in level
// depth: acceptable because CancelOrder is not the hottest path.
// Reports whether id was found.
func (l *PriceLevel) eraseByID(id uint64) bool {
	for i := l.head; i < len(l.orderIDs); i++ {
		if l.orderIDs[i] == id {
			copy(l.orderIDs[i:], l.orderIDs[i+1:])
			l.orderIDs = l.orderIDs[:len(l.orderIDs)-1]
			return true
		}
	}
	return false
}

// PriceLevelIndex is a dense, price-indexed array of PriceLevel cells
// for one side of the book. Random access by price is O(1); this trades
// memory (one cell per representable price, whether occupied or not)
// for avoiding tree-descent and rebalancing allocations on the hot
// matching path.
type PriceLevelIndex struct {
	levels []PriceLevel
}

func newPriceLevelIndex(maxPrice uint32) *PriceLevelIndex {
	return &PriceLevelIndex{levels: make([]PriceLevel, maxPrice)}
}

// At returns the level cell for price. Callers must ensure
// price < len(levels); Book validates this at its public boundary.
func (pl *PriceLevelIndex) At(price uint32) *PriceLevel {
	return &pl.levels[price]
}

// Reset restores every cell to its zero state.
func (pl *PriceLevelIndex) Reset() {
	for i := range pl.levels {
		pl.levels[i] = PriceLevel{}
	}
}
