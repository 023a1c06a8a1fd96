package qlattice

/*
Status represents the integrity of a lattice at a point in time. The two
fields always change together: a lattice starts coherent with its shield
raised, and a detected decoherence drops both at once. There is no
transition back to coherent.
*/
type Status struct {
	Phase        string
	ShieldActive bool
}

const (
	// SuperpositionStable is the phase label of a coherent lattice.
	SuperpositionStable = "SUPERPOSITION_STABLE"

	// SlumberZeroProbability is both the phase label of a decohered
	// lattice and the audit verdict that caused it.
	SlumberZeroProbability = "SLUMBER_ZERO_PROBABILITY"

	// SovereignUnion is the audit verdict for a pattern free of
	// decoherence flags.
	SovereignUnion = "SOVEREIGN_UNION"
)

// decoherenceFlags are matched case-insensitively as literal substrings
// anywhere in an interference pattern.
var decoherenceFlags = []string{"ego_static", "chaos_entropy"}

// Coherent reports whether the lattice is still in superposition.
func (s Status) Coherent() bool {
	return s.Phase == SuperpositionStable
}
