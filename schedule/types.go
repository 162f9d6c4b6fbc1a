// Package schedule: core value types shared by schedules and their callers.
package schedule

// ParameterSet holds the named physical parameters valid at a single
// instant in time — resistance, load resistance, and so on. Values are
// plain float64 in SI units; the circuit topology decides which names it
// requires.
//
// Sets returned by Schedule.At are fresh copies: no identity persists
// across time instants, and mutating a returned set never affects the
// schedule or any other caller.
type ParameterSet map[string]float64

// Clone returns an independent copy of the set.
func (p ParameterSet) Clone() ParameterSet {
	c := make(ParameterSet, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Breakpoint is a time-triggered event: at instant At (inclusive), the
// Overrides merge over the parameter values in force just before it.
// Parameters not named in Overrides keep their previous values, so an
// event only has to mention what it changes.
//
// Example — a partial short dropping R from 10 Ω to 1 Ω at 50 ms:
//
//	schedule.Breakpoint{At: 0.05, Overrides: schedule.ParameterSet{"R": 1.0}}
type Breakpoint struct {
	At        float64
	Overrides ParameterSet
}
