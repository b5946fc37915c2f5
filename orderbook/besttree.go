package orderbook

import "github.com/google/btree"

// btreeTracker is the alternate best-price tracker. It trades the
// bitmap's word-scan for O(log N) balanced-tree descent over the active
// prices. Only best-price discovery changes: Book still stores levels in
// the dense per-price arrays sized by MaxPrice, and still ignores orders
// priced at or above MaxPrice.
//
// Selected via orderbook.Config.LargePriceDomain; satisfies the same
// bestPriceTracker interface as bitmapTracker so Book is unaffected by
// which backend is in use.
type btreeTracker struct {
	maxPrice uint32
	bids     *btree.BTree
	asks     *btree.BTree
	bestBid  uint32
	bestAsk  uint32
}

const btreeDegree = 32

// priceItem adapts a bare price into a btree.Item by ordinary integer
// ordering.
type priceItem uint32

func (p priceItem) Less(than btree.Item) bool {
	return p < than.(priceItem)
}

func newBTreeTracker(maxPrice uint32) *btreeTracker {
	return &btreeTracker{
		maxPrice: maxPrice,
		bids:     btree.New(btreeDegree),
		asks:     btree.New(btreeDegree),
		bestAsk:  maxPrice,
	}
}

func (t *btreeTracker) treeFor(side Side) *btree.BTree {
	if side == Buy {
		return t.bids
	}
	return t.asks
}

func (t *btreeTracker) Activate(side Side, price uint32) {
	t.treeFor(side).ReplaceOrInsert(priceItem(price))
	if side == Buy {
		if price > t.bestBid {
			t.bestBid = price
		}
	} else {
		if price < t.bestAsk {
			t.bestAsk = price
		}
	}
}

func (t *btreeTracker) Deactivate(side Side, price uint32) {
	t.treeFor(side).Delete(priceItem(price))
}

func (t *btreeTracker) BestBid() uint32 { return t.bestBid }
func (t *btreeTracker) BestAsk() uint32 { return t.bestAsk }

func (t *btreeTracker) RecomputeBestBid() uint32 {
	if item := t.bids.Max(); item != nil {
		t.bestBid = uint32(item.(priceItem))
	} else {
		t.bestBid = 0
	}
	return t.bestBid
}

func (t *btreeTracker) RecomputeBestAsk() uint32 {
	if item := t.asks.Min(); item != nil {
		t.bestAsk = uint32(item.(priceItem))
	} else {
		t.bestAsk = t.maxPrice
	}
	return t.bestAsk
}

func (t *btreeTracker) Reset() {
	t.bids = btree.New(btreeDegree)
	t.asks = btree.New(btreeDegree)
	t.bestBid = 0
	t.bestAsk = t.maxPrice
}
