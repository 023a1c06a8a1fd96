// lattice.go
package qlattice

import (
	"log"
	"strings"
	"sync"

	"github.com/theapemachine/errnie"
)

/*
Lattice represents a complex-valued state host with a fixed phase anchor.
It supports a three-step transformation pipeline over caller-owned state
vectors and a decoherence audit over free-form interference patterns.

The transformation pipeline is a pure function of the configured
frequency and its input. The audit is the only operation that mutates
the lattice: a detected decoherence flag drops the phase label and the
shield together, permanently.
*/
type Lattice struct {
	mu        sync.RWMutex
	frequency float64 // degrees, immutable after construction
	status    Status
	ledger    []AuditRecord
}

/*
NewLattice creates a coherent lattice with its shield raised.

The phase anchor defaults to DefaultFrequency and can be overridden with
WithFrequency. Non-finite frequencies are rejected with
ErrNonFiniteFrequency rather than letting NaN propagate through the
phase alignment trigonometry.
*/
func NewLattice(opts ...LatticeOption) (*Lattice, error) {
	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	l := &Lattice{
		frequency: config.Frequency,
		status: Status{
			Phase:        SuperpositionStable,
			ShieldActive: true,
		},
		ledger: make([]AuditRecord, 0),
	}

	errnie.Info(
		"Lattice initialized. Shield active. Phase anchor: %v",
		l.frequency,
	)
	return l, nil
}

// Frequency returns the phase anchor in degrees.
func (l *Lattice) Frequency() float64 {
	return l.frequency
}

/*
Status returns the phase label and shield flag as one value, read under
the lattice lock. The two fields change in lockstep, so a caller can
never observe one side of a transition without the other.
*/
func (l *Lattice) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

/*
GateTripleMirror applies the three-step transformation pipeline to a
state vector:

 1. Phase alignment with the configured frequency.
 2. Projection onto the real axis (equilibrium gate).
 3. The entanglement anchor, currently an identity pass.

The result has the same length as the input and the caller's slice is
never mutated. An empty vector passes through as an empty vector.
*/
func (l *Lattice) GateTripleMirror(stateVector []complex128) []complex128 {
	errnie.Info("Applying triple-gate pipeline...")

	stages := gateStages(l.frequency)
	for i, stage := range stages {
		stateVector = stage.apply(stateVector)
		errnie.Info("Gate %d/%d (%s) applied", i+1, len(stages), stage.name)
	}

	errnie.Info("Triple-gate pipeline complete.")
	return stateVector
}

/*
AuditDecoherence inspects an interference pattern for decoherence flags.

The pattern is matched case-insensitively against each flag as a literal
substring anywhere in the text. On a match the lattice enters the
slumber state: the phase label becomes SlumberZeroProbability and the
shield drops, permanently. Without a match the lattice is left exactly
as it was, which means a lattice that already slumbers stays slumbering
even when a later pattern comes back clean.

Every audit, either way, is appended to the lattice's ledger.
*/
func (l *Lattice) AuditDecoherence(interferencePattern string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	pattern := strings.ToLower(interferencePattern)
	for _, flag := range decoherenceFlags {
		if strings.Contains(pattern, flag) {
			log.Printf("DECOHERENCE DETECTED (%s): entering slumber state", flag)
			l.status = Status{
				Phase:        SlumberZeroProbability,
				ShieldActive: false,
			}
			l.record(interferencePattern, SlumberZeroProbability)
			return SlumberZeroProbability
		}
	}

	errnie.Info("COHERENCE VERIFIED: phase anchor = %v", l.frequency)
	l.record(interferencePattern, SovereignUnion)
	return SovereignUnion
}
