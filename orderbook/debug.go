package orderbook

import "github.com/pkg/errors"

// debugAssertionsEnabled gates the invariant checks below. It is false
// by default; with DebugAssertions(true), a failing check panics instead
// of passing silently. Book's own methods do not run these checks; they
// run only where a caller invokes them.
var debugAssertionsEnabled = false

// DebugAssertions toggles the package's invariant checks. Never used
// for control flow: a failing assertion panics, it never returns
// an error a caller could branch on.
func DebugAssertions(enabled bool) {
	debugAssertionsEnabled = enabled
}

func assertInvariant(condition bool, msg string) {
	if debugAssertionsEnabled && !condition {
		panic(errors.Errorf("orderbook: invariant violated: %s", msg))
	}
}

// checkLevelInvariant verifies that a level's cached total_quantity
// equals the sum of its non-tombstoned resident orders' quantities.
// Only called from tests, never on the hot path.
func (b *Book) checkLevelInvariant(side Side, price uint32) {
	if !debugAssertionsEnabled {
		return
	}
	level := b.levelsFor(side).At(price)
	var sum uint32
	for i := level.head; i < len(level.orderIDs); i++ {
		if o := b.orders.Get(level.orderIDs[i]); o != nil && !o.Deleted {
			sum += o.Quantity
		}
	}
	assertInvariant(sum == level.totalQuantity, "level total_quantity diverged from resident orders")
}
