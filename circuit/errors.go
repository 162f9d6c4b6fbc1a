// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set. Builders MUST return these sentinels
// (wrapped with the offending field or parameter name) and tests MUST check
// them via errors.Is.

package circuit

import "errors"

var (
	// ErrNonPhysical is returned when a physical constant or parameter makes
	// the topology ill-defined: zero or negative inductance or capacitance,
	// non-positive load resistance. Checked eagerly by Validate and on every
	// System/Outputs call for time-varying parameters.
	ErrNonPhysical = errors.New("circuit: non-physical parameter")

	// ErrMissingParameter is returned when the parameter set does not carry
	// a value the topology requires (e.g. no "R" for an RL circuit).
	ErrMissingParameter = errors.New("circuit: required parameter missing")

	// ErrBadState is returned when a state vector's dimension does not match
	// the topology.
	ErrBadState = errors.New("circuit: state dimension mismatch")
)
