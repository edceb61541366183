package metrics

// SetEntriesTotal sets the row-count gauge for one entity
func (m *Metrics) SetEntriesTotal(entity string, count int64) {
	m.safeExecute("SetEntriesTotal", func() {
		m.EntriesTotal.WithLabelValues(entity).Set(float64(count))
	})
}

// IncrementEntryCreated increments the creation counter for one entity
func (m *Metrics) IncrementEntryCreated(entity string) {
	m.safeExecute("IncrementEntryCreated", func() {
		m.EntryCreatedTotal.WithLabelValues(entity).Inc()
	})
}

// RecordLikeToggle records one like toggle. action is "like" or "unlike".
func (m *Metrics) RecordLikeToggle(target, action string) {
	m.safeExecute("RecordLikeToggle", func() {
		m.LikeTogglesTotal.WithLabelValues(target, action).Inc()
	})
}

// RecordGeocodeCache records a geocode cache lookup. result is "hit" or "miss".
func (m *Metrics) RecordGeocodeCache(result string) {
	m.safeExecute("RecordGeocodeCache", func() {
		m.GeocodeCacheTotal.WithLabelValues(result).Inc()
	})
}

// RecordListingCache records a listing cache lookup. result is "hit" or "miss".
func (m *Metrics) RecordListingCache(entity, result string) {
	m.safeExecute("RecordListingCache", func() {
		m.ListingCacheTotal.WithLabelValues(entity, result).Inc()
	})
}
