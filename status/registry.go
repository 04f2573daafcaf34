package status

import "sync/atomic"

// Registry is the central metrics facade
// The scheduler caches pointers at construction; the tick loop writes atomics directly
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Metric is one formatted reading for overlays
type Metric struct {
	Key   string
	Value float64
	Int   bool
}

// Readings returns every metric, ints first, each group in key order
func (r *Registry) Readings() []Metric {
	out := make([]Metric, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, Metric{Key: key, Value: float64(v.Load()), Int: true})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, Metric{Key: key, Value: v.Get()})
	})
	return out
}
