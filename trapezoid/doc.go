// Package trapezoid advances a circuit.Topology through time with the
// implicit trapezoidal (Tustin) rule, re-deriving the system matrix at
// every step so time-triggered parameter changes — faults, load steps —
// take effect mid-run.
//
// 🚀 What does the stepper do?
//
//	For the linear time-varying system dx/dt = A(t)·x + B·u it solves,
//	per fixed step dt:
//
//	    (I − (dt/2)·A₊) · x₊ = (I + (dt/2)·A₋) · x₋ + dt·B·u
//
//	with A₋ built from the parameters at the step's start and A₊ from the
//	parameters at its end, so an event falling between two samples enters
//	the implicit side immediately.
//
// ✨ Key features:
//   - second-order accurate, unconditionally stable for linear circuits —
//     no adaptive step control needed
//   - scalar fast path for single-state circuits, LU solve (gonum/mat)
//     for the general case
//   - fail-fast numerics: a singular or non-finite step aborts with the
//     step index and the offending parameters, and the Result keeps every
//     sample computed before the failure
//   - derived outputs are sampled with the post-step parameter set,
//     index-aligned with the time grid
//
// ⚙️ Usage:
//
//	top := circuit.RL{L: 0.1, SourceV: 220}
//	sched, _ := schedule.New(
//	  schedule.ParameterSet{circuit.ParamResistance: 10.0},
//	  schedule.Breakpoint{At: 0.05, Overrides: schedule.ParameterSet{circuit.ParamResistance: 1.0}},
//	)
//	opts := trapezoid.Options{Dt: 1e-5, Horizon: 0.1}
//
//	res, err := trapezoid.Simulate(top, sched, &opts)
//	if err != nil { ... }
//	iL, _ := res.Series("i_L")
//
// The run is strictly sequential — step n+1 depends on step n — but
// independent runs share nothing and may be launched from as many
// goroutines as you like.
//
// Complexity: O(N·n³) time for N steps of an n-state circuit (n ≤ 2 for
// the shipped topologies), O(N·(n+outputs)) memory for the result.
package trapezoid
