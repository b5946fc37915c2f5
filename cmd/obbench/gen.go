package main

import (
	"math/rand"

	uuid "github.com/satori/go.uuid"

	"code.obcore.io/book/orderbook"
)

// syntheticOrder is one generated order plus a tag identifying the
// generator run it came from, useful for correlating console output
// back to a specific benchmark invocation.
type syntheticOrder struct {
	RunTag   string
	ID       uint64
	Side     orderbook.Side
	Price    uint32
	Quantity uint32
}

// generator produces a bounded stream of random orders centered around
// a mid price, loosely spread so a meaningful fraction of incoming
// orders cross the book rather than only ever resting.
type generator struct {
	rng      *rand.Rand
	runTag   string
	nextID   uint64
	mid      uint32
	spread   uint32
	maxQty   uint32
}

func newGenerator(seed int64, mid, spread, maxQty uint32) *generator {
	return &generator{
		rng:    rand.New(rand.NewSource(seed)),
		runTag: uuid.NewV4().String(),
		mid:    mid,
		spread: spread,
		maxQty: maxQty,
	}
}

func (g *generator) next() syntheticOrder {
	g.nextID++

	side := orderbook.Buy
	if g.rng.Intn(2) == 1 {
		side = orderbook.Sell
	}

	offset := int32(g.rng.Int31n(int32(g.spread))) - int32(g.spread/2)
	price := int32(g.mid) + offset
	if price < 1 {
		price = 1
	}

	return syntheticOrder{
		RunTag:   g.runTag,
		ID:       g.nextID,
		Side:     side,
		Price:    uint32(price),
		Quantity: uint32(g.rng.Int31n(int32(g.maxQty))) + 1,
	}
}
