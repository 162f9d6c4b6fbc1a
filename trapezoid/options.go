// Package trapezoid: run configuration.
package trapezoid

// Default run parameters, matching a typical fault-study resolution.
const (
	// DefaultDt is the default integration step in seconds.
	DefaultDt = 1e-5

	// DefaultHorizon is the default simulated span in seconds.
	DefaultHorizon = 0.1
)

// Options configures a single simulation run.
//
// Fields:
//   - Dt           — fixed integration step (s). Must be positive & finite.
//   - Horizon      — total simulated span (s). The grid holds
//     N = round(Horizon/Dt) samples at t[i] = i·Dt.
//   - InitialState — state vector at t=0; nil means the zero vector
//     (a de-energized circuit). Length must equal the topology dimension.
//
// Example:
//
//	opts := trapezoid.DefaultOptions()
//	opts.Horizon = 0.01
//	opts.Dt = 1e-6
//	res, err := trapezoid.Simulate(top, sched, &opts)
type Options struct {
	Dt           float64
	Horizon      float64
	InitialState []float64
}

// DefaultOptions returns the canonical run configuration: a zero initial
// state advanced for DefaultHorizon at DefaultDt.
func DefaultOptions() Options {
	return Options{
		Dt:      DefaultDt,
		Horizon: DefaultHorizon,
	}
}
