// Package schedule models time-triggered parameter changes — faults,
// load steps, clearings — as piecewise-constant schedules over the
// non-negative time axis.
//
// 🚀 What is a schedule?
//
//	A deterministic rule mapping every instant t to a full set of named
//	physical parameters. The axis is partitioned into consecutive
//	half-open intervals by ordered breakpoints; each breakpoint carries
//	overrides that merge over the values in force before it:
//
//	    t:   0 ──────── 0.05 ──────── 0.08 ────────▶
//	    R:      10 Ω   │    1 Ω     │    10 Ω
//	                 fault        clearing
//
// ✨ Key guarantees:
//   - At(t) is pure and side-effect-free: same t, same values, always
//   - fresh ParameterSet on every call — callers may mutate their copy freely
//   - boundary instants belong to the interval that starts at them
//     (t ≥ breakpoint ⇒ post-event values)
//   - any number of ordered events, validated once at construction
//
// ⚙️ Usage:
//
//	sched, err := schedule.New(
//	  schedule.ParameterSet{"R": 10.0},
//	  schedule.Breakpoint{At: 0.05, Overrides: schedule.ParameterSet{"R": 1.0}},
//	)
//	if err != nil { ... }
//	r := sched.At(0.05)["R"] // 1.0 — the switch is inclusive on the post side
//
// Complexity: At runs in O(k) for k breakpoints; k is tiny (one or two
// events in typical fault studies), so no search structure is involved.
package schedule
