// SPDX-License-Identifier: MIT
// Package trapezoid: sentinel error set (unified, consistent).
// Configuration sentinels abort before the loop with no partial output;
// ErrUnstable aborts mid-run and travels inside a *StepError that keeps the
// failing index, instant and parameter values.

package trapezoid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transient/schedule"
)

var (
	// ErrNilTopology is returned when Simulate is given a nil topology.
	ErrNilTopology = errors.New("trapezoid: topology is nil")

	// ErrNilSchedule is returned when Simulate is given a nil schedule.
	ErrNilSchedule = errors.New("trapezoid: schedule is nil")

	// ErrBadStep is returned for a non-positive or non-finite time step.
	ErrBadStep = errors.New("trapezoid: time step must be positive and finite")

	// ErrBadHorizon is returned for a non-positive horizon or a horizon
	// shorter than a single step.
	ErrBadHorizon = errors.New("trapezoid: horizon must cover at least one step")

	// ErrBadInitialState is returned when the initial state's length does
	// not match the topology dimension, or it contains non-finite values.
	ErrBadInitialState = errors.New("trapezoid: invalid initial state")

	// ErrUnstable flags a numerical failure: the trapezoidal left-hand
	// operator was singular, or a solve produced NaN/±Inf. Matched via
	// errors.Is against the *StepError that Simulate returns.
	ErrUnstable = errors.New("trapezoid: numerical instability")

	// ErrUnknownSeries is returned by Result lookups for a name the
	// topology does not produce.
	ErrUnknownSeries = errors.New("trapezoid: unknown output series")
)

// StepError reports a numerical failure at a specific step. It wraps the
// underlying cause (a gonum solve condition, a builder error, a non-finite
// value check) and matches ErrUnstable under errors.Is, so callers can
// branch on the class without losing the detail.
type StepError struct {
	// Step is the index of the sample that could not be computed.
	Step int

	// Time is the instant t[Step] on the run's grid.
	Time float64

	// Params is the parameter set in force at Time.
	Params schedule.ParameterSet

	// Cause is the underlying numerical error.
	Cause error
}

// Error renders the step index, instant and cause.
func (e *StepError) Error() string {
	return fmt.Sprintf("trapezoid: step %d (t=%g): %v", e.Step, e.Time, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *StepError) Unwrap() error { return e.Cause }

// Is reports class membership: every StepError is an ErrUnstable.
func (e *StepError) Is(target error) bool { return target == ErrUnstable }
