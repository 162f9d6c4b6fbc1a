package trapezoid_test

import (
	"testing"

	"github.com/katalvlaran/transient/circuit"
	"github.com/katalvlaran/transient/schedule"
	"github.com/katalvlaran/transient/trapezoid"
)

// benchmarkSimulate runs one full fault study per iteration and fails on
// unexpected errors.
func benchmarkSimulate(b *testing.B, top circuit.Topology, sched *schedule.Schedule, opts trapezoid.Options) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trapezoid.Simulate(top, sched, &opts); err != nil {
			b.Fatalf("Simulate failed: %v", err)
		}
	}
}

// BenchmarkSimulate_RL benchmarks the scalar path: 10 000 steps of the
// single-state RL fault study.
func BenchmarkSimulate_RL(b *testing.B) {
	sched, err := schedule.New(
		schedule.ParameterSet{circuit.ParamResistance: 10.0},
		schedule.Breakpoint{At: 0.05, Overrides: schedule.ParameterSet{circuit.ParamResistance: 1.0}},
	)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	benchmarkSimulate(b, circuit.RL{L: 0.1, SourceV: 220}, sched,
		trapezoid.Options{Dt: 1e-5, Horizon: 0.1})
}

// BenchmarkSimulate_RLCLoad benchmarks the LU path: 10 000 steps of the
// two-state load study.
func BenchmarkSimulate_RLCLoad(b *testing.B) {
	sched, err := schedule.New(
		schedule.ParameterSet{circuit.ParamLoadResistance: 50.0},
		schedule.Breakpoint{At: 0.005, Overrides: schedule.ParameterSet{circuit.ParamLoadResistance: 25.0}},
	)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	benchmarkSimulate(b, circuit.RLCLoad{L: 0.01, C: 1e-6, SourceV: 100}, sched,
		trapezoid.Options{Dt: 1e-6, Horizon: 0.01})
}

// BenchmarkSimulate_RLCoarse isolates per-step overhead with a short grid.
func BenchmarkSimulate_RLCoarse(b *testing.B) {
	sched := schedule.Constant(schedule.ParameterSet{circuit.ParamResistance: 10.0})
	benchmarkSimulate(b, circuit.RL{L: 0.1, SourceV: 220}, sched,
		trapezoid.Options{Dt: 1e-3, Horizon: 0.1})
}
