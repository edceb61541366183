package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// getTestMetrics registers against a fresh registry so tests never
// collide on the default one
func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func getGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, g.Write(m))
	return m.GetGauge().GetValue()
}

func TestSetEntriesTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name   string
		entity string
		count  int64
	}{
		{"成功: ゼロ件", "contest", 0},
		{"成功: 1件", "workspace", 1},
		{"成功: 多数", "event", 4200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetEntriesTotal(tt.entity, tt.count)
			value := getGaugeValue(t, m.EntriesTotal.WithLabelValues(tt.entity))
			assert.Equal(t, float64(tt.count), value)
		})
	}
}

func TestIncrementEntryCreated(t *testing.T) {
	m := getTestMetrics()

	initial := getCounterValue(t, m.EntryCreatedTotal.WithLabelValues("contest"))
	m.IncrementEntryCreated("contest")
	m.IncrementEntryCreated("contest")

	value := getCounterValue(t, m.EntryCreatedTotal.WithLabelValues("contest"))
	assert.Equal(t, initial+2, value)

	// 別エンティティのカウンタは独立
	assert.Equal(t, float64(0), getCounterValue(t, m.EntryCreatedTotal.WithLabelValues("event")))
}

func TestRecordLikeToggle(t *testing.T) {
	m := getTestMetrics()

	m.RecordLikeToggle("board", "like")
	m.RecordLikeToggle("board", "like")
	m.RecordLikeToggle("board", "unlike")
	m.RecordLikeToggle("workspace", "like")

	assert.Equal(t, float64(2), getCounterValue(t, m.LikeTogglesTotal.WithLabelValues("board", "like")))
	assert.Equal(t, float64(1), getCounterValue(t, m.LikeTogglesTotal.WithLabelValues("board", "unlike")))
	assert.Equal(t, float64(1), getCounterValue(t, m.LikeTogglesTotal.WithLabelValues("workspace", "like")))
}

func TestRecordListingCache(t *testing.T) {
	m := getTestMetrics()

	m.RecordListingCache("contest", "hit")
	m.RecordListingCache("contest", "miss")
	m.RecordListingCache("contest", "hit")

	assert.Equal(t, float64(2), getCounterValue(t, m.ListingCacheTotal.WithLabelValues("contest", "hit")))
	assert.Equal(t, float64(1), getCounterValue(t, m.ListingCacheTotal.WithLabelValues("contest", "miss")))
}

func TestRecordGeocodeCache(t *testing.T) {
	m := getTestMetrics()

	m.RecordGeocodeCache("hit")
	m.RecordGeocodeCache("miss")
	m.RecordGeocodeCache("miss")

	assert.Equal(t, float64(1), getCounterValue(t, m.GeocodeCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, float64(2), getCounterValue(t, m.GeocodeCacheTotal.WithLabelValues("miss")))
}
