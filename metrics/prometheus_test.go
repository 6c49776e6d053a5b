package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusProvider_CounterAccumulates(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg)

	c := p.Counter("mapreduce_test_total", WithDescription("test counter"))
	c.Add(3)
	c.Add(2)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "mapreduce_test_total" {
			found = true
			require.Len(t, f.Metric, 1)
			assert.Equal(t, float64(5), f.Metric[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found, "expected mapreduce_test_total to be registered")
}

func TestPrometheusProvider_SameNameReusesInstrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg)

	c1 := p.Counter("mapreduce_same_total")
	c2 := p.Counter("mapreduce_same_total")

	c1.Add(1)
	c2.Add(1)

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == "mapreduce_same_total" {
			require.Len(t, f.Metric, 1)
			assert.Equal(t, float64(2), f.Metric[0].GetCounter().GetValue())
		}
	}
}

func TestPrometheusProvider_HistogramRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg)

	h := p.Histogram("mapreduce_test_seconds", WithUnit("seconds"))
	h.Record(0.5)
	h.Record(1.5)

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == "mapreduce_test_seconds" {
			require.Len(t, f.Metric, 1)
			assert.EqualValues(t, 2, f.Metric[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestPrometheusProvider_UpDownCounterMovesBothWays(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg)

	u := p.UpDownCounter("mapreduce_test_pending")
	u.Add(5)
	u.Add(-2)

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == "mapreduce_test_pending" {
			require.Len(t, f.Metric, 1)
			assert.Equal(t, float64(3), f.Metric[0].GetGauge().GetValue())
		}
	}
}
