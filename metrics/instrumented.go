package metrics

import "code.obcore.io/book/orderbook"

// InstrumentedBook wraps a Book and records a Recorder's counters and
// gauges around AddOrder, CancelOrder, ModifyOrder and ClearOrderbook:
// the embedded type does the real work, the wrapper does nothing but
// observe. CleanupDeletedOrders and CleanupDeletedOrdersAudit pass
// straight through to the Book and record nothing.
type InstrumentedBook struct {
	*orderbook.Book
	rec Recorder
}

// NewInstrumentedBook wraps book with rec. rec may be nil, in which
// case a NoopRecorder is used.
func NewInstrumentedBook(book *orderbook.Book, rec Recorder) *InstrumentedBook {
	if rec == nil {
		rec = NoopRecorder{}
	}
	return &InstrumentedBook{Book: book, rec: rec}
}

func (b *InstrumentedBook) AddOrder(orderID uint64, side orderbook.Side, price, quantity uint32) {
	if price >= b.Book.MaxPrice() {
		b.rec.IncRejectedOutOfBounds()
		b.Book.AddOrder(orderID, side, price, quantity) // still delegate: book logs and no-ops
		return
	}

	b.Book.AddOrder(orderID, side, price, quantity)

	if trades := b.Book.LastTrades(); len(trades) > 0 {
		b.rec.IncTrades(len(trades))
	}
	b.rec.IncOrdersAdded()
	b.recordQuote()
	b.rec.SetOrderCount(b.Book.OrderCount())
}

func (b *InstrumentedBook) CancelOrder(orderID uint64) {
	b.Book.CancelOrder(orderID)
	b.rec.IncOrdersCancelled()
	b.recordQuote()
	b.rec.SetOrderCount(b.Book.OrderCount())
}

func (b *InstrumentedBook) ModifyOrder(orderID uint64, newQuantity uint32) {
	b.Book.ModifyOrder(orderID, newQuantity)
	b.rec.IncOrdersModified()
	b.recordQuote()
}

func (b *InstrumentedBook) ClearOrderbook() {
	b.Book.ClearOrderbook()
	b.recordQuote()
	b.rec.SetOrderCount(0)
}

func (b *InstrumentedBook) recordQuote() {
	q := b.Book.GetQuote()
	b.rec.SetBestBid(q.BidPrice)
	b.rec.SetBestAsk(q.AskPrice)
}
