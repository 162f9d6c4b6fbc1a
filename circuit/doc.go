// Package circuit describes lumped-parameter circuit topologies as
// continuous-time state-space templates dx/dt = A(t)·x + B·u, ready to be
// advanced by the trapezoid stepper.
//
// 🚀 What is a topology?
//
//	The fixed structural pattern of a circuit — which state variable
//	influences which derivative — independent of the numeric parameter
//	values. A Topology is a stateless builder: give it the parameter set
//	valid at some instant and it hands back A and B for that instant.
//	The sparsity pattern never changes between calls; only coefficients do.
//
// Shipped topologies:
//
//   - RL — a series resistor–inductor loop, one state (inductor current):
//
//     V ──R(t)──┐          di/dt = (−R/L)·i + (1/L)·V
//     │         L
//     └─────────┘
//
//   - RLCLoad — a series L feeding a C in parallel with a resistive load,
//     two states (inductor current, capacitor voltage):
//
//     V ──L──┬────┐        di_L/dt = (−1/L)·v_C + (1/L)·V
//     │      C  R_load     dv_C/dt = (1/C)·i_L − (1/(R_load·C))·v_C
//     └──────┴────┘
//
// ✨ Key guarantees:
//   - System and Outputs are pure: no hidden state, no integration
//   - domain errors (L ≤ 0, C ≤ 0, R_load ≤ 0) surface before any stepping
//   - derived outputs (v_R, v_L, i_load) use the parameter set valid at the
//     same instant as the state they are computed from
//
// Adding a new circuit means implementing Topology here — the stepper in
// trapezoid/ never changes.
package circuit
