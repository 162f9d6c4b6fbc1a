// Package transient is your in-memory workbench for simulating the
// electrical transient behavior of simple lumped-parameter circuits —
// energizations, faults and load steps — as linear time-varying
// state-space systems.
//
// 🚀 What is transient?
//
//	A small, deterministic library that brings together:
//		• Parameter schedules: piecewise-constant, event-driven values (fault at 50 ms, clearing at 80 ms, …)
//		• Circuit topologies: RL series and RLC-with-load as fixed state-space templates
//		• Trapezoidal stepper: implicit Tustin integration, unconditionally stable for linear circuits
//		• Result series: time grid, named output waveforms and scalar summaries
//
// ✨ Why choose transient?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid numerics – implicit trapezoidal rule, second-order accurate
//   - Fail-fast – ill-posed circuits and singular steps return errors, never silent NaN
//   - Extensible – add a new circuit.Topology without touching the stepper
//
// Under the hood, everything is organized under three subpackages:
//
//	schedule/  — time thresholds and parameter overrides (the event model)
//	circuit/   — topology templates building A(t), B from the current parameters
//	trapezoid/ — the fixed-step integration loop and its Result series
//
// Quick ASCII example:
//
//	    V ──R(t)──┐
//	    │         L
//	    └─────────┘
//
//	a series RL loop whose resistance drops at t=50 ms (a partial short),
//	driving the inductor current from 22 A toward 220 A.
//
// Dive into the package docs and examples/ for full scenarios, from a
// single energization to a fault-and-clear sequence.
//
//	go get github.com/katalvlaran/transient
package transient
