package trapezoid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transient/circuit"
	"github.com/katalvlaran/transient/schedule"
)

// errSingularOperator is the cause recorded when the scalar left-hand
// coefficient degenerates to zero; the matrix path gets its cause from the
// gonum solver instead.
var errSingularOperator = errors.New("left-hand operator is singular")

// Simulate advances top from its initial state across the whole horizon.
//
// Description:
//
//	A fixed-step loop over the grid t[i] = i·Dt, N = round(Horizon/Dt).
//	Index 0 holds the declared initial condition and its derived outputs;
//	each iteration solves the implicit trapezoidal update
//
//	    (I − (Dt/2)·A₊) · x₊ = (I + (Dt/2)·A₋) · x₋ + Dt·B·u
//
//	with A₋ = System(params(t[n])) and A₊ = System(params(t[n+1])), then
//	records x₊ and the outputs derived from x₊ under the post-step
//	parameter set. Single-state circuits take a direct scalar division;
//	larger ones go through an LU solve.
//
// Errors:
//   - ErrNilTopology / ErrNilSchedule / ErrBadStep / ErrBadHorizon /
//     ErrBadInitialState and circuit validation errors are detected before
//     the loop; no partial Result is returned for those.
//   - *StepError (matching ErrUnstable) aborts mid-run; the returned
//     Result then holds the valid prefix up to the failing step.
//
// Simulate never panics on user input and never returns non-finite samples.
func Simulate(top circuit.Topology, sched *schedule.Schedule, opts *Options) (*Result, error) {
	if top == nil {
		return nil, ErrNilTopology
	}
	if sched == nil {
		return nil, ErrNilSchedule
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Dt <= 0 || math.IsNaN(o.Dt) || math.IsInf(o.Dt, 0) {
		return nil, fmt.Errorf("dt=%g: %w", o.Dt, ErrBadStep)
	}
	if o.Horizon <= 0 || math.IsNaN(o.Horizon) || math.IsInf(o.Horizon, 0) {
		return nil, fmt.Errorf("horizon=%g: %w", o.Horizon, ErrBadHorizon)
	}
	if err := top.Validate(); err != nil {
		return nil, err
	}

	dim := top.Dim()
	x := mat.NewVecDense(dim, nil)
	if o.InitialState != nil {
		if len(o.InitialState) != dim {
			return nil, fmt.Errorf("got %d entries, topology has %d states: %w",
				len(o.InitialState), dim, ErrBadInitialState)
		}
		for i, v := range o.InitialState {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry %d is not finite: %w", i, ErrBadInitialState)
			}
			x.SetVec(i, v)
		}
	}

	steps := int(math.Round(o.Horizon / o.Dt))
	if steps < 2 {
		return nil, fmt.Errorf("horizon=%g dt=%g: %w", o.Horizon, o.Dt, ErrBadHorizon)
	}

	// Probe the builder and the output equations at t=0 so a missing
	// parameter aborts before any allocation-heavy work.
	p0 := sched.At(0)
	if _, _, err := top.System(p0); err != nil {
		return nil, err
	}
	out0, err := top.Outputs(x, p0)
	if err != nil {
		return nil, err
	}

	res := newResult(steps, dim, o.Dt, top.OutputNames())
	res.setStep(0, x, out0)

	u := top.Input()
	h := o.Dt / 2

	for n := 0; n < steps-1; n++ {
		tNow, tNext := res.times[n], res.times[n+1]
		pNow, pNext := sched.At(tNow), sched.At(tNext)

		aMinus, b, err := top.System(pNow)
		if err != nil {
			return abort(res, n+1, tNow, pNow, err)
		}
		aPlus, _, err := top.System(pNext)
		if err != nil {
			return abort(res, n+1, tNext, pNext, err)
		}

		if dim == 1 {
			// Scalar degenerate case: the left-hand operator is one number.
			lhs := 1 - h*aPlus.At(0, 0)
			rhs := (1+h*aMinus.At(0, 0))*x.AtVec(0) + o.Dt*b.AtVec(0)*u
			if lhs == 0 {
				return abort(res, n+1, tNext, pNext, errSingularOperator)
			}
			x.SetVec(0, rhs/lhs)
		} else {
			// L = I − h·A₊
			var lhs mat.Dense
			lhs.Scale(-h, aPlus)
			for i := 0; i < dim; i++ {
				lhs.Set(i, i, 1+lhs.At(i, i))
			}

			// r = (I + h·A₋)·x + Dt·B·u
			var ax mat.VecDense
			ax.MulVec(aMinus, x)
			rhs := mat.NewVecDense(dim, nil)
			for i := 0; i < dim; i++ {
				rhs.SetVec(i, x.AtVec(i)+h*ax.AtVec(i)+o.Dt*b.AtVec(i)*u)
			}

			var xNext mat.VecDense
			if err = xNext.SolveVec(&lhs, rhs); err != nil {
				return abort(res, n+1, tNext, pNext, err)
			}
			x.CopyVec(&xNext)
		}

		if i, bad := nonFinite(x); bad {
			return abort(res, n+1, tNext, pNext,
				fmt.Errorf("state %d is not finite", i))
		}

		// Derived outputs use the post-step parameter set, consistent with
		// the state they are computed from.
		out, err := top.Outputs(x, pNext)
		if err != nil {
			return abort(res, n+1, tNext, pNext, err)
		}
		res.setStep(n+1, x, out)
	}

	return res, nil
}

// abort truncates the record to the valid prefix and wraps the cause with
// the failing step's coordinates.
func abort(res *Result, step int, t float64, p schedule.ParameterSet, cause error) (*Result, error) {
	res.truncate(step)
	return res, &StepError{Step: step, Time: t, Params: p, Cause: cause}
}

// nonFinite returns the index of the first NaN/±Inf entry, if any.
func nonFinite(x *mat.VecDense) (int, bool) {
	for i := 0; i < x.Len(); i++ {
		if v := x.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return i, true
		}
	}
	return 0, false
}
