package obs

import "sync"

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// CountMeter accumulates counters in memory, keyed by metric name.
// Labels are ignored. Histograms record only their event count.
type CountMeter struct {
	mu sync.Mutex
	m  map[string]float64
}

func NewCountMeter() *CountMeter {
	return &CountMeter{m: make(map[string]float64)}
}

func (c *CountMeter) Counter(name string, value float64, labels ...Label) {
	c.mu.Lock()
	c.m[name] += value
	c.mu.Unlock()
}

func (c *CountMeter) Histogram(name string, value float64, labels ...Label) {
	c.mu.Lock()
	c.m[name]++
	c.mu.Unlock()
}

// Value returns the accumulated total for name.
func (c *CountMeter) Value(name string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m[name]
}
