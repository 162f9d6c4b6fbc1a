package circuit_test

import (
	"testing"

	"github.com/katalvlaran/transient/circuit"
	"github.com/katalvlaran/transient/schedule"
)

// BenchmarkRL_System measures the per-step cost of rebuilding the 1×1
// system, the hot path of a scalar simulation loop.
func BenchmarkRL_System(b *testing.B) {
	top := circuit.RL{L: 0.1, SourceV: 220}
	p := schedule.ParameterSet{circuit.ParamResistance: 10.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := top.System(p); err != nil {
			b.Fatalf("System failed: %v", err)
		}
	}
}

// BenchmarkRLCLoad_System measures the per-step cost of rebuilding the
// 2×2 system.
func BenchmarkRLCLoad_System(b *testing.B) {
	top := circuit.RLCLoad{L: 0.01, C: 1e-6, SourceV: 100}
	p := schedule.ParameterSet{circuit.ParamLoadResistance: 50.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := top.System(p); err != nil {
			b.Fatalf("System failed: %v", err)
		}
	}
}
