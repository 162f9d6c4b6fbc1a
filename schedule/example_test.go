package schedule_test

import (
	"fmt"

	"github.com/katalvlaran/transient/schedule"
)

// ExampleSchedule_At models a fault-and-clear sequence on a series RL
// loop: the line resistance collapses to 1 Ω at 50 ms and is restored to
// 10 Ω at 80 ms when the breaker recloses.
func ExampleSchedule_At() {
	sched, _ := schedule.New(
		schedule.ParameterSet{"R": 10.0},
		schedule.Breakpoint{At: 0.05, Overrides: schedule.ParameterSet{"R": 1.0}},
		schedule.Breakpoint{At: 0.08, Overrides: schedule.ParameterSet{"R": 10.0}},
	)

	for _, t := range []float64{0.00, 0.04, 0.05, 0.07, 0.08, 0.10} {
		fmt.Printf("t=%.2fs R=%.0fΩ\n", t, sched.At(t)["R"])
	}

	// Output:
	// t=0.00s R=10Ω
	// t=0.04s R=10Ω
	// t=0.05s R=1Ω
	// t=0.07s R=1Ω
	// t=0.08s R=10Ω
	// t=0.10s R=10Ω
}
