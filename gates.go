// gates.go
package qlattice

import (
	"math"
	"math/cmplx"
)

/*
gateStage is a single named step of the triple-gate pipeline. Stages run
strictly in order, each consuming the previous stage's output. A stage
never mutates the vector it receives.
*/
type gateStage struct {
	name  string
	apply func([]complex128) []complex128
}

func gateStages(frequency float64) []gateStage {
	return []gateStage{
		{
			name: "phase alignment",
			apply: func(stateVector []complex128) []complex128 {
				return phaseAlign(stateVector, frequency)
			},
		},
		{
			name:  "equilibrium projection",
			apply: equilibriumGate,
		},
		{
			name:  "entanglement anchor",
			apply: entanglementAnchor,
		},
	}
}

/*
phaseAlign applies a global phase shift derived from the configured
frequency. The frequency is interpreted in degrees and converted to
radians; every amplitude is multiplied by the same unit-magnitude factor
e^(i·radians), so per-element magnitudes are preserved.
*/
func phaseAlign(stateVector []complex128, frequency float64) []complex128 {
	radians := frequency * math.Pi / 180.0
	phaseFactor := complex(math.Cos(radians), math.Sin(radians))

	aligned := make([]complex128, len(stateVector))
	for i, amplitude := range stateVector {
		aligned[i] = amplitude * phaseFactor
	}
	return aligned
}

/*
equilibriumGate projects the state vector onto the real axis by averaging
each amplitude with its complex conjugate. (z + conj(z)) / 2 is Re(z), so
the imaginary component of every element is zeroed and the gate is
idempotent.
*/
func equilibriumGate(stateVector []complex128) []complex128 {
	projected := make([]complex128, len(stateVector))
	for i, amplitude := range stateVector {
		projected[i] = (amplitude + cmplx.Conj(amplitude)) / 2.0
	}
	return projected
}

/*
entanglementAnchor is the reserved third stage of the pipeline. It could
couple the state vector to another register; until such a coupling
exists it returns the vector unchanged. It stays a named stage so the
pipeline keeps its three-gate shape.
*/
func entanglementAnchor(stateVector []complex128) []complex128 {
	return stateVector
}
