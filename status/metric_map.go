package status

import (
	"slices"
	"sync"
)

// MetricMap is a lazily populated set of named metrics
// Lookups allocate under the write lock once; hot paths keep the pointer
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric named key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	metric := m.metrics[key]
	m.mu.RUnlock()
	if metric != nil {
		return metric
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if metric = m.metrics[key]; metric == nil {
		metric = new(T)
		m.metrics[key] = metric
	}
	return metric
}

// Keys returns registered names in sorted order
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.metrics))
	for k := range m.metrics {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// Range calls fn per metric in key order, without holding the lock during fn
func (m *MetricMap[T]) Range(fn func(key string, metric *T)) {
	for _, k := range m.Keys() {
		fn(k, m.Get(k))
	}
}

// Count is the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.metrics)
}
