// SPDX-License-Identifier: MIT
// Package schedule: sentinel error set. All constructors MUST return these
// sentinels and tests MUST check them via errors.Is. No function in this
// package panics on user-triggered conditions.

package schedule

import "errors"

var (
	// ErrEmptyBase is returned when New is given a nil or empty base set:
	// a schedule with no parameters cannot drive any topology.
	ErrEmptyBase = errors.New("schedule: base parameter set is empty")

	// ErrEmptyOverrides is returned when a breakpoint carries no overrides:
	// an event that changes nothing is a configuration mistake, not a no-op.
	ErrEmptyOverrides = errors.New("schedule: breakpoint overrides are empty")

	// ErrNegativeBreakpoint is returned when a breakpoint time is negative;
	// schedules are defined on the non-negative time axis only.
	ErrNegativeBreakpoint = errors.New("schedule: breakpoint time is negative")

	// ErrBreakpointOrder is returned when breakpoint times are not strictly
	// increasing. Ordering is validated once, at construction, so At never
	// has to re-check it.
	ErrBreakpointOrder = errors.New("schedule: breakpoints not strictly increasing")
)
