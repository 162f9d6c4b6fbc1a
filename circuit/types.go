// Package circuit: the Topology contract shared by all circuit templates.
package circuit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transient/schedule"
)

// Names of the time-varying parameters the shipped topologies read from a
// schedule.ParameterSet.
const (
	// ParamResistance is the series resistance of the RL topology (Ω).
	ParamResistance = "R"

	// ParamLoadResistance is the load resistance of the RLCLoad topology (Ω).
	ParamLoadResistance = "R_load"
)

// Topology is a stateless state-space template for a fixed circuit
// structure. Implementations hold only physical constants (L, C, source
// voltage); everything time-varying arrives through the ParameterSet.
//
// Contract:
//   - System is a pure mapping parameters → (A, B); it performs no
//     integration and must preserve the topology's sparsity pattern.
//   - B is time-invariant for the shipped topologies, but System returns it
//     alongside A so future topologies may vary it without an API break.
//   - Outputs derives the named physical output quantities from a state
//     vector and the parameter set valid at the same instant.
//   - Validate reports non-physical constants before any stepping begins.
type Topology interface {
	// Dim returns the state dimension n.
	Dim() int

	// StateNames returns the physical meaning of each state entry, in order.
	StateNames() []string

	// OutputNames returns the derived output series names, in the order
	// Outputs produces them.
	OutputNames() []string

	// Validate checks the fixed physical constants (ErrNonPhysical).
	Validate() error

	// System builds the continuous-time matrices for the given parameters:
	// A is n×n, B is n×1.
	System(p schedule.ParameterSet) (*mat.Dense, *mat.VecDense, error)

	// Input returns the constant scalar source u driving the circuit.
	Input() float64

	// Outputs computes the derived outputs for state x under parameters p,
	// aligned with OutputNames.
	Outputs(x *mat.VecDense, p schedule.ParameterSet) ([]float64, error)
}
