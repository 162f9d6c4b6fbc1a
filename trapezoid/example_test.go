package trapezoid_test

import (
	"fmt"

	"github.com/katalvlaran/transient/circuit"
	"github.com/katalvlaran/transient/schedule"
	"github.com/katalvlaran/transient/trapezoid"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSimulate — RL energization with a partial short
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 220 V source energizes a series RL loop (L = 0.1 H, R = 10 Ω).
//	At t = 50 ms a partial short collapses the resistance to 1 Ω, so the
//	current leaves its 22 A plateau and climbs toward the 220 A asymptote.
//
// Options:
//   - Dt = 10 µs, Horizon = 100 ms → 10 000 samples
//
// Complexity: O(N) time, O(N) memory (single-state scalar path).
func ExampleSimulate() {
	top := circuit.RL{L: 0.1, SourceV: 220}
	sched, _ := schedule.New(
		schedule.ParameterSet{circuit.ParamResistance: 10.0},
		schedule.Breakpoint{At: 0.05, Overrides: schedule.ParameterSet{circuit.ParamResistance: 1.0}},
	)
	opts := trapezoid.Options{Dt: 1e-5, Horizon: 0.1}

	res, err := trapezoid.Simulate(top, sched, &opts)
	if err != nil {
		fmt.Println("simulate:", err)
		return
	}

	finalI, _ := res.Final("i_L")
	finalVL, _ := res.Final("v_L")
	fmt.Printf("samples:       %d\n", res.Len())
	fmt.Printf("final current: %.2f A\n", finalI)
	fmt.Printf("final v_L:     %.2f V\n", finalVL)

	// Output:
	// samples:       10000
	// final current: 99.81 A
	// final v_L:     120.19 V
}

// ExampleSimulate_loadStep runs the two-state RLC-with-load topology
// through a load halving at 5 ms: the capacitor voltage recovers to the
// source level while the load current doubles to V/R_load = 4 A.
func ExampleSimulate_loadStep() {
	top := circuit.RLCLoad{L: 0.01, C: 1e-6, SourceV: 100}
	sched, _ := schedule.New(
		schedule.ParameterSet{circuit.ParamLoadResistance: 50.0},
		schedule.Breakpoint{At: 0.005, Overrides: schedule.ParameterSet{circuit.ParamLoadResistance: 25.0}},
	)
	opts := trapezoid.Options{Dt: 1e-6, Horizon: 0.01}

	res, err := trapezoid.Simulate(top, sched, &opts)
	if err != nil {
		fmt.Println("simulate:", err)
		return
	}

	vC, _ := res.Final("v_C")
	iLoad, _ := res.Final("i_load")
	fmt.Printf("final v_C:    %.1f V\n", vC)
	fmt.Printf("final i_load: %.1f A\n", iLoad)

	// Output:
	// final v_C:    100.0 V
	// final i_load: 4.0 A
}
