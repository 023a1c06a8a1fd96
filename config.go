package qlattice

import (
	"errors"
	"fmt"
	"math"
)

// DefaultFrequency is the phase anchor, in degrees, used when no
// frequency is configured.
const DefaultFrequency = 60106.0

// ErrNonFiniteFrequency is returned when a lattice is constructed with a
// NaN or infinite frequency. A non-finite anchor would poison every
// phase alignment with NaN, so construction fails instead.
var ErrNonFiniteFrequency = errors.New("phase frequency must be finite")

type Config struct {
	Frequency float64
}

func NewConfig() *Config {
	return &Config{
		Frequency: DefaultFrequency,
	}
}

// Validate checks the configuration before it is anchored to a lattice.
func (c *Config) Validate() error {
	if math.IsNaN(c.Frequency) || math.IsInf(c.Frequency, 0) {
		return fmt.Errorf("%w: got %v", ErrNonFiniteFrequency, c.Frequency)
	}
	return nil
}
