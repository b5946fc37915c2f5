package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLevelInvariant_PassesWhenConsistent(t *testing.T) {
	DebugAssertions(true)
	defer DebugAssertions(false)

	book := newTestBook(t)
	book.AddOrder(1, Buy, 100, 10)
	book.AddOrder(2, Buy, 100, 5)

	assert.NotPanics(t, func() {
		book.checkLevelInvariant(Buy, 100)
	})
}

func TestCheckLevelInvariant_NoopWhenDisabled(t *testing.T) {
	DebugAssertions(false)

	book := newTestBook(t)
	book.AddOrder(1, Buy, 100, 10)
	// Force divergence directly; with assertions off this must not panic.
	book.levelsFor(Buy).At(100).totalQuantity = 999

	assert.NotPanics(t, func() {
		book.checkLevelInvariant(Buy, 100)
	})
}
