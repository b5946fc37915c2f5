package metrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusRecorder is the production Recorder, registering a small
// fixed set of instruments against a caller-supplied registry rather
// than the global default — so multiple Books in one process (or one
// under test) don't collide on metric names.
type PrometheusRecorder struct {
	ordersAdded     prometheus.Counter
	ordersCancelled prometheus.Counter
	ordersModified  prometheus.Counter
	trades          prometheus.Counter
	rejected        prometheus.Counter
	bestBid         prometheus.Gauge
	bestAsk         prometheus.Gauge
	orderCount      prometheus.Gauge
}

// NewPrometheusRecorder builds and registers the book's instruments
// under the obcore namespace. reg must not be nil; pass
// prometheus.NewRegistry() for an isolated registry in tests.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		ordersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obcore",
			Subsystem: "book",
			Name:      "orders_added_total",
			Help:      "Number of orders submitted via AddOrder.",
		}),
		ordersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obcore",
			Subsystem: "book",
			Name:      "orders_cancelled_total",
			Help:      "Number of CancelOrder calls, including ones for unknown orders.",
		}),
		ordersModified: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obcore",
			Subsystem: "book",
			Name:      "orders_modified_total",
			Help:      "Number of ModifyOrder calls, including ones for unknown orders.",
		}),
		trades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obcore",
			Subsystem: "book",
			Name:      "trades_total",
			Help:      "Number of trades produced by the matching loop.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obcore",
			Subsystem: "book",
			Name:      "orders_rejected_total",
			Help:      "Number of AddOrder calls rejected for an out-of-bounds price.",
		}),
		bestBid: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "obcore",
			Subsystem: "book",
			Name:      "best_bid",
			Help:      "Current best bid price, 0 if the bid side is empty.",
		}),
		bestAsk: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "obcore",
			Subsystem: "book",
			Name:      "best_ask",
			Help:      "Current best ask price.",
		}),
		orderCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "obcore",
			Subsystem: "book",
			Name:      "order_index_size",
			Help:      "Number of records in the order index, live and tombstoned.",
		}),
	}

	reg.MustRegister(
		r.ordersAdded, r.ordersCancelled, r.ordersModified,
		r.trades, r.rejected, r.bestBid, r.bestAsk, r.orderCount,
	)

	return r
}

func (r *PrometheusRecorder) IncOrdersAdded()         { r.ordersAdded.Inc() }
func (r *PrometheusRecorder) IncOrdersCancelled()     { r.ordersCancelled.Inc() }
func (r *PrometheusRecorder) IncOrdersModified()      { r.ordersModified.Inc() }
func (r *PrometheusRecorder) IncTrades(n int)         { r.trades.Add(float64(n)) }
func (r *PrometheusRecorder) IncRejectedOutOfBounds() { r.rejected.Inc() }
func (r *PrometheusRecorder) SetBestBid(price uint32) { r.bestBid.Set(float64(price)) }
func (r *PrometheusRecorder) SetBestAsk(price uint32) { r.bestAsk.Set(float64(price)) }
func (r *PrometheusRecorder) SetOrderCount(count int)  { r.orderCount.Set(float64(count)) }
