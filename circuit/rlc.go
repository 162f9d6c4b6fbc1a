package circuit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transient/schedule"
)

// RLCLoad is a series inductor feeding a capacitor in parallel with a
// resistive load — the lumped single-section model of a short transmission
// line with a consumer at its end. Two states: inductor current i_L and
// capacitor voltage v_C. The load resistance "R_load" is read from the
// schedule, so a load step is a breakpoint halving R_load.
//
// State equations:
//
//	di_L/dt = (−1/L)·v_C + (1/L)·V
//	dv_C/dt = (1/C)·i_L − (1/(R_load·C))·v_C
//
// Outputs: i_L (A), v_C (V), i_load = v_C/R_load (A).
type RLCLoad struct {
	// L is the series inductance in henry. Must be positive.
	L float64

	// C is the shunt capacitance in farad. Must be positive.
	C float64

	// SourceV is the constant source voltage in volts.
	SourceV float64
}

// Dim returns 2: inductor current and capacitor voltage.
func (c RLCLoad) Dim() int { return 2 }

// StateNames returns the state labels.
func (c RLCLoad) StateNames() []string { return []string{"i_L", "v_C"} }

// OutputNames returns the derived series labels in Outputs order.
func (c RLCLoad) OutputNames() []string { return []string{"i_L", "v_C", "i_load"} }

// Validate rejects non-positive L or C, either of which makes a state
// derivative unbounded before any stepping begins.
func (c RLCLoad) Validate() error {
	if c.L <= 0 {
		return fmt.Errorf("inductance L=%v: %w", c.L, ErrNonPhysical)
	}
	if c.C <= 0 {
		return fmt.Errorf("capacitance C=%v: %w", c.C, ErrNonPhysical)
	}
	return nil
}

// System builds the 2×2 state matrix and the input vector for the current
// load resistance:
//
//	A = ⎡ 0      −1/L          ⎤    B = ⎡ 1/L ⎤
//	    ⎣ 1/C    −1/(R_load·C) ⎦        ⎣ 0   ⎦
//
// The zero entries are structural: the source drives only the inductor
// branch, and i_L does not feed back on its own derivative.
func (c RLCLoad) System(p schedule.ParameterSet) (*mat.Dense, *mat.VecDense, error) {
	rLoad, ok := p[ParamLoadResistance]
	if !ok {
		return nil, nil, fmt.Errorf("%q: %w", ParamLoadResistance, ErrMissingParameter)
	}
	if rLoad <= 0 {
		return nil, nil, fmt.Errorf("%s=%v: %w", ParamLoadResistance, rLoad, ErrNonPhysical)
	}

	a := mat.NewDense(2, 2, []float64{
		0, -1 / c.L,
		1 / c.C, -1 / (rLoad * c.C),
	})
	b := mat.NewVecDense(2, []float64{1 / c.L, 0})

	return a, b, nil
}

// Input returns the constant source voltage u = V.
func (c RLCLoad) Input() float64 { return c.SourceV }

// Outputs derives i_L, v_C and the load current i_load = v_C/R_load from
// the state and the load resistance valid at the same instant.
func (c RLCLoad) Outputs(x *mat.VecDense, p schedule.ParameterSet) ([]float64, error) {
	if x.Len() != 2 {
		return nil, fmt.Errorf("got %d states, want 2: %w", x.Len(), ErrBadState)
	}
	rLoad, ok := p[ParamLoadResistance]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ParamLoadResistance, ErrMissingParameter)
	}
	if rLoad <= 0 {
		return nil, fmt.Errorf("%s=%v: %w", ParamLoadResistance, rLoad, ErrNonPhysical)
	}

	iL := x.AtVec(0)
	vC := x.AtVec(1)

	return []float64{iL, vC, vC / rLoad}, nil
}
