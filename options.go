package qlattice

// LatticeOption is a function type for configuring a lattice
type LatticeOption func(*Config)

// WithFrequency sets the phase anchor, in degrees
func WithFrequency(frequency float64) LatticeOption {
	return func(c *Config) {
		c.Frequency = frequency
	}
}
