package stellar

import "math"

// CriticalMasses are the metallicity-only mass thresholds of the model.
type CriticalMasses struct {
	Hook             float64 // above this the main sequence shows a hook
	HeliumFlash      float64 // helium ignites non-degenerately above this
	FirstGiantBranch float64 // helium ignites before the giant branch above this
}

// NewCriticalMasses computes the critical masses at metallicity z.
func NewCriticalMasses(z float64) CriticalMasses {
	zeta := math.Log10(z / SolarMetallicity)
	return CriticalMasses{
		Hook:             1.0185 + 0.16015*zeta + 0.0892*zeta*zeta,
		HeliumFlash:      1.995 + 0.25*zeta + 0.087*zeta*zeta,
		FirstGiantBranch: 13.048 * math.Pow(z/0.02, 0.06) / (1 + 0.0012*math.Pow(0.02/z, 1.27)),
	}
}

// Regime classifies a mass against the helium-ignition thresholds.
func (c CriticalMasses) Regime(m float64) Regime {
	switch {
	case m < c.HeliumFlash:
		return Low
	case m <= c.FirstGiantBranch:
		return Intermediate
	default:
		return High
	}
}

// Regime selects among the regime-specific branches of the giant fits.
type Regime int

const (
	// Low-mass stars have degenerate cores and ignite helium in a flash.
	Low Regime = iota
	// Intermediate-mass stars ignite helium quietly on the giant branch.
	Intermediate
	// High-mass stars ignite helium while crossing the Hertzsprung gap.
	High
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case Low:
		return "low"
	case Intermediate:
		return "intermediate"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Rates are the core-growth rate constants in Msun/Lsun/Myr.
type Rates struct {
	Hydrogen float64 // A_H, hydrogen shell burning
	Helium   float64 // A_He, helium shell burning
	Combined float64 // A_HHe, both shells in thermal pulses
}

const heliumRate = 7.66e-5

// NewRates computes the rate constants for a star of mass m.
func NewRates(m float64) Rates {
	h := pow10(math.Max(-4.8, math.Min(-5.7+0.8*m, -4.1+0.14*m)))
	return Rates{
		Hydrogen: h,
		Helium:   heliumRate,
		Combined: h * heliumRate / (h + heliumRate),
	}
}
