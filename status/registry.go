package status

import "sync/atomic"

// Metric keys shared by the engine, scheduler and exporters
// Keys ending in "_total" are exported as counters, everything else as gauges
const (
	KeyTicks      = "engine.ticks_total"
	KeyFoodsEaten = "game.foods_eaten_total"
	KeyGamesOver  = "game.games_over_total"
	KeyScore      = "game.score"
	KeySpeed      = "game.speed"
	KeyElapsed    = "game.elapsed_seconds"
)

// Registry is the central metrics facade
// Producers cache pointers at construction; hot paths write directly to atomics
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

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Values flattens the registry into a plain map, used for the exit log line
func (r *Registry) Values() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = float64(v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = v.Load()
	})
	return out
}
