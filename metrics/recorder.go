// Package metrics instruments a Book from the outside, keeping
// instrumentation a caller concern rather than a core responsibility: a
// wrapping type forwards every call to an embedded Book and records
// side effects around it.
package metrics

// Recorder receives counters and gauges describing Book activity. Book
// itself never depends on this package; InstrumentedBook is the only
// caller.
type Recorder interface {
	IncOrdersAdded()
	IncOrdersCancelled()
	IncOrdersModified()
	IncTrades(n int)
	IncRejectedOutOfBounds()
	SetBestBid(price uint32)
	SetBestAsk(price uint32)
	SetOrderCount(count int)
}

// NoopRecorder discards everything. Useful as an InstrumentedBook's
// default when a caller wants the decorator's shape without paying for
// a real metrics backend.
type NoopRecorder struct{}

func (NoopRecorder) IncOrdersAdded()          {}
func (NoopRecorder) IncOrdersCancelled()      {}
func (NoopRecorder) IncOrdersModified()       {}
func (NoopRecorder) IncTrades(n int)          {}
func (NoopRecorder) IncRejectedOutOfBounds()  {}
func (NoopRecorder) SetBestBid(price uint32)  {}
func (NoopRecorder) SetBestAsk(price uint32)  {}
func (NoopRecorder) SetOrderCount(count int)  {}
