package schedule

import "fmt"

// Schedule — piecewise-constant parameter values over time
//
// Description:
//
//	A Schedule partitions the non-negative time axis into consecutive
//	half-open intervals. The base set is in force on [0, bp[0].At); each
//	breakpoint opens a new interval [bp[i].At, bp[i+1].At) on which its
//	overrides, merged over everything before them, are in force. The last
//	interval extends to +∞.
//
// Algorithm Outline:
//  1. New precomputes the effective ParameterSet per interval by folding
//     overrides left to right, so At is a threshold scan plus one copy.
//  2. At(t) walks the thresholds and returns a fresh copy of the set for
//     the last interval whose start is ≤ t (inclusive on the post side).
//
// Errors:
//   - ErrEmptyBase          — base set nil or empty.
//   - ErrEmptyOverrides     — a breakpoint with nothing to override.
//   - ErrNegativeBreakpoint — a threshold below t=0.
//   - ErrBreakpointOrder    — thresholds not strictly increasing.
type Schedule struct {
	// thresholds[i] opens intervals[i+1]; intervals[0] is the base set.
	thresholds []float64
	intervals  []ParameterSet
}

// New builds a Schedule from a base parameter set and zero or more ordered
// breakpoints. Validation is eager: a schedule that constructs successfully
// can be queried at any time without further error paths.
func New(base ParameterSet, events ...Breakpoint) (*Schedule, error) {
	if len(base) == 0 {
		return nil, ErrEmptyBase
	}

	s := &Schedule{
		thresholds: make([]float64, 0, len(events)),
		intervals:  make([]ParameterSet, 0, len(events)+1),
	}
	s.intervals = append(s.intervals, base.Clone())

	prev := -1.0
	for i, ev := range events {
		if len(ev.Overrides) == 0 {
			return nil, fmt.Errorf("breakpoint %d (t=%v): %w", i, ev.At, ErrEmptyOverrides)
		}
		if ev.At < 0 {
			return nil, fmt.Errorf("breakpoint %d (t=%v): %w", i, ev.At, ErrNegativeBreakpoint)
		}
		if i > 0 && ev.At <= prev {
			return nil, fmt.Errorf("breakpoint %d (t=%v after t=%v): %w", i, ev.At, prev, ErrBreakpointOrder)
		}
		prev = ev.At

		// Effective set for this interval: previous interval + overrides.
		eff := s.intervals[len(s.intervals)-1].Clone()
		for k, v := range ev.Overrides {
			eff[k] = v
		}
		s.thresholds = append(s.thresholds, ev.At)
		s.intervals = append(s.intervals, eff)
	}

	return s, nil
}

// Constant returns an event-free schedule that always yields base.
// It panics only if base is empty (programmer error in a literal).
func Constant(base ParameterSet) *Schedule {
	s, err := New(base)
	if err != nil {
		panic(err)
	}
	return s
}

// At returns the parameter set in force at time t, as a fresh copy.
//
// The lookup is pure and total: the boundary instant itself belongs to the
// interval that starts at it (t ≥ threshold ⇒ post-event values), and any
// t below the first threshold — including a negative t — yields the base
// set, the piecewise-constant extension of the first interval.
func (s *Schedule) At(t float64) ParameterSet {
	idx := 0
	for i, th := range s.thresholds {
		if t < th {
			break
		}
		idx = i + 1
	}
	return s.intervals[idx].Clone()
}

// Breakpoints returns the ordered event thresholds as an independent slice.
// An event-free schedule returns an empty slice.
func (s *Schedule) Breakpoints() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)
	return out
}
