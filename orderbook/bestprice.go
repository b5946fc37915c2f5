package orderbook

import "math/bits"

// bitmapTracker is the default best-price tracker: two bitmaps, one per
// side, each bit marking whether that side's price level is non-empty,
// plus cached best_bid/best_ask scalars. Word-level bit scans give
// constant-time (relative to price-domain word count) discovery of the
// current best price on either side.
type bitmapTracker struct {
	maxPrice uint32
	bidWords []uint64
	askWords []uint64
	bestBid  uint32
	bestAsk  uint32
}

func newBitmapTracker(maxPrice uint32) *bitmapTracker {
	words := int((maxPrice + 63) / 64)
	return &bitmapTracker{
		maxPrice: maxPrice,
		bidWords: make([]uint64, words),
		askWords: make([]uint64, words),
		bestAsk:  maxPrice,
	}
}

func bitmapFor(t *bitmapTracker, side Side) []uint64 {
	if side == Buy {
		return t.bidWords
	}
	return t.askWords
}

func (t *bitmapTracker) Activate(side Side, price uint32) {
	words := bitmapFor(t, side)
	words[price/64] |= 1 << (price % 64)
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

func (t *bitmapTracker) Deactivate(side Side, price uint32) {
	words := bitmapFor(t, side)
	words[price/64] &^= 1 << (price % 64)
}

func (t *bitmapTracker) BestBid() uint32 { return t.bestBid }
func (t *bitmapTracker) BestAsk() uint32 { return t.bestAsk }

// RecomputeBestBid scans the BUY bitmap from the highest word downward;
// on the first non-zero word w at index i, the best bid is
// 64*i + (63 - leading_zero_count(w)). Returns 0 if all words are zero.
func (t *bitmapTracker) RecomputeBestBid() uint32 {
	for i := len(t.bidWords) - 1; i >= 0; i-- {
		if w := t.bidWords[i]; w != 0 {
			t.bestBid = uint32(i)*64 + uint32(63-bits.LeadingZeros64(w))
			return t.bestBid
		}
	}
	t.bestBid = 0
	return 0
}

// RecomputeBestAsk scans the SELL bitmap from the lowest word upward;
// on the first non-zero word w at index i, the best ask is
// 64*i + trailing_zero_count(w). Returns MaxPrice if all words are zero.
func (t *bitmapTracker) RecomputeBestAsk() uint32 {
	for i, w := range t.askWords {
		if w != 0 {
			t.bestAsk = uint32(i)*64 + uint32(bits.TrailingZeros64(w))
			return t.bestAsk
		}
	}
	t.bestAsk = t.maxPrice
	return t.maxPrice
}

func (t *bitmapTracker) Reset() {
	for i := range t.bidWords {
		t.bidWords[i] = 0
	}
	for i := range t.askWords {
		t.askWords[i] = 0
	}
	t.bestBid = 0
	t.bestAsk = t.maxPrice
}
