package circuit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transient/schedule"
)

// RL is a series resistor–inductor loop driven by a constant voltage
// source. Single state: the inductor current i_L. The resistance "R" is
// read from the schedule, so a fault (partial short) is just a breakpoint
// dropping R.
//
// Outputs: i_L (A), v_R = R·i_L (V), v_L = V − v_R (V).
type RL struct {
	// L is the loop inductance in henry. Must be positive.
	L float64

	// SourceV is the constant source voltage in volts.
	SourceV float64
}

// Dim returns 1: the inductor current is the only state variable.
func (c RL) Dim() int { return 1 }

// StateNames returns the state labels.
func (c RL) StateNames() []string { return []string{"i_L"} }

// OutputNames returns the derived series labels in Outputs order.
func (c RL) OutputNames() []string { return []string{"i_L", "v_R", "v_L"} }

// Validate rejects a non-positive inductance, which would make di/dt
// unbounded before any stepping begins.
func (c RL) Validate() error {
	if c.L <= 0 {
		return fmt.Errorf("inductance L=%v: %w", c.L, ErrNonPhysical)
	}
	return nil
}

// System builds A = [−R/L] and B = [1/L] for the current resistance.
func (c RL) System(p schedule.ParameterSet) (*mat.Dense, *mat.VecDense, error) {
	r, ok := p[ParamResistance]
	if !ok {
		return nil, nil, fmt.Errorf("%q: %w", ParamResistance, ErrMissingParameter)
	}

	a := mat.NewDense(1, 1, []float64{-r / c.L})
	b := mat.NewVecDense(1, []float64{1 / c.L})

	return a, b, nil
}

// Input returns the constant source voltage u = V.
func (c RL) Input() float64 { return c.SourceV }

// Outputs derives i_L, v_R and v_L from the state and the resistance valid
// at the same instant (Ohm's law, then Kirchhoff's voltage law).
func (c RL) Outputs(x *mat.VecDense, p schedule.ParameterSet) ([]float64, error) {
	if x.Len() != 1 {
		return nil, fmt.Errorf("got %d states, want 1: %w", x.Len(), ErrBadState)
	}
	r, ok := p[ParamResistance]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ParamResistance, ErrMissingParameter)
	}

	iL := x.AtVec(0)
	vR := r * iL
	vL := c.SourceV - vR

	return []float64{iL, vR, vL}, nil
}
