package metrics_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"code.obcore.io/book/logging"
	"code.obcore.io/book/metrics"
	"code.obcore.io/book/mocks"
	"code.obcore.io/book/orderbook"
)

func newTestBook() *orderbook.Book {
	return orderbook.NewBook(logging.NewTestLogger(), orderbook.Config{MaxPrice: 1000, MaxTrades: 32})
}

func TestInstrumentedBook_AddOrderRecordsCountersAndQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockRecorder(ctrl)

	book := metrics.NewInstrumentedBook(newTestBook(), rec)

	rec.EXPECT().IncOrdersAdded()
	rec.EXPECT().SetBestBid(gomock.Any())
	rec.EXPECT().SetBestAsk(gomock.Any())
	rec.EXPECT().SetOrderCount(1)

	book.AddOrder(1, orderbook.Buy, 100, 10)
}

func TestInstrumentedBook_AddOrderRecordsTradesOnMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockRecorder(ctrl)

	book := metrics.NewInstrumentedBook(newTestBook(), rec)

	rec.EXPECT().IncOrdersAdded()
	rec.EXPECT().SetBestBid(gomock.Any())
	rec.EXPECT().SetBestAsk(gomock.Any())
	rec.EXPECT().SetOrderCount(1)
	book.AddOrder(1, orderbook.Sell, 100, 10)

	rec.EXPECT().IncOrdersAdded()
	rec.EXPECT().IncTrades(1)
	rec.EXPECT().SetBestBid(gomock.Any())
	rec.EXPECT().SetBestAsk(gomock.Any())
	// The filled resting order stays in the index as a tombstone.
	rec.EXPECT().SetOrderCount(1)
	book.AddOrder(2, orderbook.Buy, 100, 10)
}

func TestInstrumentedBook_AddOrderRecordsRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockRecorder(ctrl)

	book := metrics.NewInstrumentedBook(newTestBook(), rec)

	rec.EXPECT().IncRejectedOutOfBounds()
	book.AddOrder(1, orderbook.Buy, 1000, 10)
}

func TestInstrumentedBook_CancelOrderRecordsCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockRecorder(ctrl)

	book := metrics.NewInstrumentedBook(newTestBook(), rec)
	rec.EXPECT().IncOrdersAdded()
	rec.EXPECT().SetBestBid(gomock.Any())
	rec.EXPECT().SetBestAsk(gomock.Any())
	rec.EXPECT().SetOrderCount(1)
	book.AddOrder(1, orderbook.Buy, 100, 10)

	rec.EXPECT().IncOrdersCancelled()
	rec.EXPECT().SetBestBid(gomock.Any())
	rec.EXPECT().SetBestAsk(gomock.Any())
	rec.EXPECT().SetOrderCount(0)
	book.CancelOrder(1)
}

func TestNoopRecorder_SatisfiesInterface(t *testing.T) {
	var rec metrics.Recorder = metrics.NoopRecorder{}
	assert.NotPanics(t, func() {
		rec.IncOrdersAdded()
		rec.SetBestBid(100)
	})
}
