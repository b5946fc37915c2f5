package orderbook

import "code.obcore.io/book/logging"

// bestPriceTracker is satisfied by both bitmapTracker (the default)
// and btreeTracker (the large-price-domain alternative); Book is
// written against the interface so the backend choice is invisible to
// the matching algorithm.
type bestPriceTracker interface {
	Activate(side Side, price uint32)
	Deactivate(side Side, price uint32)
	BestBid() uint32
	BestAsk() uint32
	RecomputeBestBid() uint32
	RecomputeBestAsk() uint32
	Reset()
}

// Book is an opaque context owning one instrument's order index,
// price-level index, best-price tracker, and trade buffer: an explicit
// struct a caller instantiates and owns; no package-level state exists.
//
// Book is not safe for concurrent use. Every exported method assumes
// exclusive access for its duration.
type Book struct {
	log *logging.Logger

	maxPrice  uint32
	maxTrades uint32

	orders     *OrderIndex
	buyLevels  *PriceLevelIndex
	sellLevels *PriceLevelIndex
	tracker    bestPriceTracker

	trades     []Trade
	tradeCount uint32

	// LogPriceLevelsDebug and LogRemovedOrdersDebug gate verbose
	// per-level and per-stale-order debug logging on the hot path;
	// left off by default so a quiet book pays no logging overhead.
	LogPriceLevelsDebug   bool
	LogRemovedOrdersDebug bool
}

// NewBook constructs a Book sized per cfg. log may be nil, in which
// case logging.NewDevLogger() is used.
func NewBook(log *logging.Logger, cfg Config) *Book {
	if log == nil {
		log = logging.NewDevLogger()
	}
	if cfg.MaxPrice == 0 {
		cfg = NewDefaultConfig()
	}

	var tracker bestPriceTracker
	if cfg.LargePriceDomain {
		tracker = newBTreeTracker(cfg.MaxPrice)
	} else {
		tracker = newBitmapTracker(cfg.MaxPrice)
	}

	return &Book{
		log:        log.Named("orderbook"),
		maxPrice:   cfg.MaxPrice,
		maxTrades:  cfg.MaxTrades,
		orders:     newOrderIndex(),
		buyLevels:  newPriceLevelIndex(cfg.MaxPrice),
		sellLevels: newPriceLevelIndex(cfg.MaxPrice),
		tracker:    tracker,
		trades:     make([]Trade, cfg.MaxTrades),
	}
}

func (b *Book) levelsFor(side Side) *PriceLevelIndex {
	if side == Buy {
		return b.buyLevels
	}
	return b.sellLevels
}

// LastTrades returns the trades recorded by the most recent AddOrder
// call. The returned slice aliases Book's internal buffer and is only
// valid until the next mutating call; callers must consume it
// immediately.
func (b *Book) LastTrades() []Trade {
	return b.trades[:b.tradeCount]
}

// GetQuote returns a top-of-book snapshot.
func (b *Book) GetQuote() Quote {
	var q Quote

	bestBid := b.tracker.BestBid()
	if bestBid > 0 {
		level := b.buyLevels.At(bestBid)
		if !level.Empty() {
			q.BidPrice = bestBid
			q.BidQuantity = level.TotalQuantity()
		}
	}

	bestAsk := b.tracker.BestAsk()
	if bestAsk < b.maxPrice {
		level := b.sellLevels.At(bestAsk)
		if !level.Empty() {
			q.AskPrice = bestAsk
			q.AskQuantity = level.TotalQuantity()
		}
	}

	return q
}

// AddOrder attempts to match an incoming order against the opposite
// side up to its price limit, then rests any unfilled remainder.
//
// price >= MaxPrice is a silent no-op. A duplicate order_id is
// undefined behavior — callers must supply unique identifiers.
func (b *Book) AddOrder(orderID uint64, side Side, price, quantity uint32) {
	b.tradeCount = 0

	if price >= b.maxPrice {
		b.log.Debug("add_order rejected: price out of bounds",
			logging.Uint64("order_id", orderID),
			logging.Uint32("price", price))
		return
	}

	filled := b.match(orderID, side, price, quantity)
	if filled == quantity {
		return
	}

	remaining := quantity - filled
	level := b.levelsFor(side).At(price)
	level.append(price, orderID, remaining)

	b.orders.Insert(&Order{ID: orderID, Side: side, Price: price, Quantity: remaining})

	// Sets the bitmap bit (idempotent if already set) and folds the
	// new price into the cached best via max/min (idempotent if this
	// level was already active, since its price can never exceed the
	// existing cached best in that case).
	b.tracker.Activate(side, price)

	if b.LogPriceLevelsDebug {
		b.log.Debug("order rested",
			logging.Uint64("order_id", orderID),
			logging.Uint32("price", price),
			logging.Uint32("remaining", remaining))
	}
}

// match runs the matching loop and returns the quantity
// filled. Matched trades are appended to the trade buffer up to
// MaxTrades; beyond that, state still updates but the trade record is
// silently dropped.
func (b *Book) match(orderID uint64, side Side, price, quantity uint32) uint32 {
	opposite := side.Opposite()
	levels := b.levelsFor(opposite)

	var remaining, filled uint32
	remaining = quantity

	crossable := func() bool {
		if remaining == 0 {
			return false
		}
		if side == Buy {
			ask := b.tracker.BestAsk()
			return ask < b.maxPrice && ask <= price
		}
		bid := b.tracker.BestBid()
		return bid > 0 && bid >= price
	}

	for crossable() {
		var bestPrice uint32
		if side == Buy {
			bestPrice = b.tracker.BestAsk()
		} else {
			bestPrice = b.tracker.BestBid()
		}

		level := levels.At(bestPrice)
		if level.Empty() {
			b.clearBestOnEmpty(opposite, bestPrice)
			continue
		}

		restingID, _ := level.Front()
		resting := b.orders.Get(restingID)

		// Stale-order skip: the FIFO head has no record, or the
		// record is tombstoned. Pop and retry.
		if resting == nil || resting.Deleted {
			level.popFront()
			if level.Empty() {
				level.reset()
				b.clearBestOnEmpty(opposite, bestPrice)
			}
			if b.LogRemovedOrdersDebug {
				b.log.Debug("skipped stale resting order", logging.Uint64("order_id", restingID))
			}
			continue
		}

		matchQty := remaining
		if resting.Quantity < matchQty {
			matchQty = resting.Quantity
		}

		b.recordTrade(side, orderID, restingID, bestPrice, matchQty)

		remaining -= matchQty
		filled += matchQty
		resting.Quantity -= matchQty
		level.totalQuantity -= matchQty

		if resting.Quantity == 0 {
			resting.Deleted = true
			level.popFront()
			if level.Empty() {
				level.reset()
				b.clearBestOnEmpty(opposite, bestPrice)
			}
		}
	}

	return filled
}

// clearBestOnEmpty clears the bitmap/tree entry for a level that just
// became empty and, if it was the cached best on that side, recomputes
// the cache from the tracker.
func (b *Book) clearBestOnEmpty(side Side, price uint32) {
	b.tracker.Deactivate(side, price)
	if side == Buy {
		if price == b.tracker.BestBid() {
			b.tracker.RecomputeBestBid()
		}
	} else {
		if price == b.tracker.BestAsk() {
			b.tracker.RecomputeBestAsk()
		}
	}
}

// recordTrade appends a Trade if the buffer still has room; beyond
// MaxTrades the match still happens but the record is dropped.
func (b *Book) recordTrade(takerSide Side, takerID, restingID uint64, price, qty uint32) {
	if b.tradeCount >= b.maxTrades {
		return
	}
	var t Trade
	if takerSide == Buy {
		t = Trade{BuyOrderID: takerID, SellOrderID: restingID, Price: price, Quantity: qty}
	} else {
		t = Trade{BuyOrderID: restingID, SellOrderID: takerID, Price: price, Quantity: qty}
	}
	b.trades[b.tradeCount] = t
	b.tradeCount++
}

// CancelOrder tombstones and erases a resting order. Absent or
// already-tombstoned identifiers are silently ignored, making repeated
// cancels of the same order idempotent.
func (b *Book) CancelOrder(orderID uint64) {
	order := b.orders.Get(orderID)
	if order == nil || order.Deleted {
		return
	}

	order.Deleted = true
	level := b.levelsFor(order.Side).At(order.Price)
	level.eraseByID(orderID)
	level.totalQuantity -= order.Quantity

	if level.Empty() {
		price := level.price
		level.reset()
		b.tracker.Deactivate(order.Side, price)
		if order.Side == Buy && price == b.tracker.BestBid() {
			b.tracker.RecomputeBestBid()
		} else if order.Side == Sell && price == b.tracker.BestAsk() {
			b.tracker.RecomputeBestAsk()
		}
	}

	b.orders.Remove(orderID)
}

// ModifyOrder replaces an order's quantity in place. Price-time
// priority is not reset: this is a quantity-only amendment, and an
// upward revision keeps the original queue position. Absent or
// tombstoned identifiers are silently ignored.
func (b *Book) ModifyOrder(orderID uint64, newQuantity uint32) {
	order := b.orders.Get(orderID)
	if order == nil || order.Deleted {
		return
	}

	level := b.levelsFor(order.Side).At(order.Price)
	level.totalQuantity = level.totalQuantity - order.Quantity + newQuantity
	order.Quantity = newQuantity
}

// CleanupDeletedOrders sweeps the order index and erases every
// tombstoned record, returning the number pruned. Never required for
// correctness of further operations.
func (b *Book) CleanupDeletedOrders() int {
	return b.orders.CleanupDeleted()
}

// CleanupDeletedOrdersAudit behaves like CleanupDeletedOrders, calling
// audit with a snapshot of each pruned order before it is erased — a
// hook for a caller that wants to log or archive what just left the
// book without holding a reference into its internals.
func (b *Book) CleanupDeletedOrdersAudit(audit func(Order)) int {
	return b.orders.CleanupDeletedWithAudit(audit)
}

// ClearOrderbook erases all state: every order, every price level on
// both sides, both bitmaps, and the cached best prices.
func (b *Book) ClearOrderbook() {
	b.orders.Clear()
	b.buyLevels.Reset()
	b.sellLevels.Reset()
	b.tracker.Reset()
	b.tradeCount = 0
}

// OrderCount returns the number of records in the order index, live and
// tombstoned — useful for callers tuning CleanupDeletedOrders cadence.
func (b *Book) OrderCount() int {
	return b.orders.Len()
}

// MaxPrice returns the exclusive upper bound on representable prices
// this Book was sized with, so a caller (an instrumented wrapper, a
// benchmark harness) can pre-check a price without duplicating the
// bound itself.
func (b *Book) MaxPrice() uint32 {
	return b.maxPrice
}
