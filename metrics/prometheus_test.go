package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"code.obcore.io/book/metrics"
)

func gatherMetric(t *testing.T, reg *prometheus.Registry, name string) *dto.Metric {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			require.Len(t, f.Metric, 1)
			return f.Metric[0]
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func TestPrometheusRecorder_RecordsTrades(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)

	rec.IncTrades(3)
	rec.IncTrades(2)

	m := gatherMetric(t, reg, "obcore_book_trades_total")
	require.Equal(t, float64(5), m.GetCounter().GetValue())
}

func TestPrometheusRecorder_GaugesReflectLastSet(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)

	rec.SetBestBid(100)
	rec.SetBestBid(150)

	m := gatherMetric(t, reg, "obcore_book_best_bid")
	require.Equal(t, float64(150), m.GetGauge().GetValue())
}
