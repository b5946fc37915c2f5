// Package orderbook implements the core of an in-memory limit order
// matching engine: an order index, a dense price-level index per side,
// a bitmap-backed best-price tracker, and the matching state machine
// that drives add/cancel/modify/quote under price-time priority.
//
// The package is deliberately non-reentrant. Every exported method on
// Book assumes exclusive access for its duration; concurrent callers
// must serialize access themselves (a mutex, a single-writer actor
// loop, or equivalent). Independent Book instances share no state and
// may run in parallel on different goroutines.
package orderbook

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Side identifies which side of the book an order rests on.
type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Opposite returns the side an incoming order of this side matches against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// Order is a single resting or incoming limit order. Quantity is the
// remaining open quantity; it decreases on fills and on ModifyOrder.
// Deleted marks a tombstoned order: logically gone, physically retained
// in the order index. A fill that drains an order tombstones it and
// leaves the record until CleanupDeletedOrders sweeps it (or
// ClearOrderbook erases everything); CancelOrder tombstones and erases
// the record in the same call.
type Order struct {
	ID       uint64
	Side     Side
	Price    uint32
	Quantity uint32
	Deleted  bool
}

// Snapshot returns a deep copy of the order, safe to retain across
// subsequent mutating calls on the book that owns the original.
func (o *Order) Snapshot() Order {
	var dst Order
	if err := copier.Copy(&dst, o); err != nil {
		panic(fmt.Errorf("orderbook: failed to snapshot order %d: %w", o.ID, err))
	}
	return dst
}

// Trade records one match between an aggressive order and a resting
// order. Price is always the resting (maker) order's price.
type Trade struct {
	BuyOrderID  uint64
	SellOrderID uint64
	Price       uint32
	Quantity    uint32
}

// Quote is a top-of-book snapshot. A zero BidPrice/BidQuantity pair
// means there is no bid; symmetrically AskPrice/AskQuantity of zero
// (with AskPrice reported as zero, not MaxPrice) means there is no ask.
type Quote struct {
	BidPrice    uint32
	BidQuantity uint32
	AskPrice    uint32
	AskQuantity uint32
}
