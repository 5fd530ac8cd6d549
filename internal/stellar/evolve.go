package stellar

import "math"

// Tick is the state of a star at one age.
type Tick struct {
	Age        float64
	Phase      Phase
	Mass       float64 // current mass; constant until the remnant forms
	Luminosity float64
	Radius     float64
	CoreMass   float64
}

// Temperature returns the effective temperature in kelvin.
func (t Tick) Temperature() float64 {
	return EffectiveTemperature(t.Luminosity, t.Radius)
}

// convectiveLimit is the mass below which the main sequence is fully convective.
const convectiveLimit = 0.7

// Evaluate returns the star's state at age (Myr). It does not modify the
// star. Negative ages are treated as zero.
func (s *Star) Evaluate(age float64) Tick {
	age = math.Max(age, 0)
	tk := s.evaluate(age)
	if !isFinite(tk.Luminosity) || !isFinite(tk.Radius) || !isFinite(tk.CoreMass) {
		s.report(StageEvaluate, tk.Phase.Short(), age, "non-finite state")
	}
	return tk
}

func (s *Star) evaluate(age float64) Tick {
	return s.evaluatePhase(s.PhaseAt(age), age)
}

// PhaseAt returns the phase the star is in at age.
func (s *Star) PhaseAt(age float64) Phase {
	b := s.bounds
	switch {
	case age < b.MainSequenceEnd && s.mass < convectiveLimit:
		return DeeplyConvectiveMainSequence
	case age < b.MainSequenceEnd:
		return MainSequence
	case age < b.HertzsprungGapEnd:
		return HertzsprungGap
	case age < b.HeliumIgnition:
		return GiantBranch
	case age < b.HeliumBurningEnd:
		return CoreHeliumBurning
	case age < b.EarlyAGBEnd:
		return EarlyAGB
	case age < b.TerminalAge:
		return ThermallyPulsingAGB
	default:
		return s.rem.phase
	}
}

// evaluatePhase applies the formulae of phase p at age. Each phase's
// formulae join those of its neighbours at the shared boundary age.
func (s *Star) evaluatePhase(p Phase, age float64) Tick {
	b := s.bounds
	tk := Tick{Age: age, Phase: p, Mass: s.mass}

	switch p {
	case DeeplyConvectiveMainSequence, MainSequence:
		tk.Luminosity, tk.Radius = s.ms.evaluate(age)

	case HertzsprungGap:
		tau := (age - b.MainSequenceEnd) / (b.HertzsprungGapEnd - b.MainSequenceEnd)
		tk.Luminosity = s.ms.lumEnd * math.Pow(s.lumEHG/s.ms.lumEnd, tau)
		tk.Radius = s.ms.radEnd * math.Pow(s.radEHG/s.ms.radEnd, tau)
		tk.CoreMass = ((1-tau)*s.hgCoreFraction + tau) * s.mcEHG

	case GiantBranch:
		tk.Luminosity = s.gb.Luminosity(age)
		tk.Radius = s.f.radGB(s.mass, tk.Luminosity)
		if s.regime == Low {
			tk.CoreMass = s.gb.CoreMass(age)
		} else {
			tau := (age - b.HertzsprungGapEnd) / (b.HeliumIgnition - b.HertzsprungGapEnd)
			tk.CoreMass = s.mcBGB + (s.mcHeI-s.mcBGB)*tau
		}

	case CoreHeliumBurning:
		tau := (age - b.HeliumIgnition) / (b.HeliumBurningEnd - b.HeliumIgnition)
		tk.Luminosity = s.he.luminosity(tau)
		tk.Radius = s.he.radius(tau)
		tk.CoreMass = s.mcHeI + (s.mcBAGB-s.mcHeI)*tau

	case EarlyAGB:
		tk.Luminosity = s.eagb.Luminosity(age)
		tk.Radius = s.f.radAGB(s.mass, tk.Luminosity)
		tk.CoreMass = math.Max(s.mcBAGB, s.eagb.CoreMass(age))

	case ThermallyPulsingAGB:
		tk.Luminosity = s.tpagb.Luminosity(age)
		tk.Radius = s.f.radAGB(s.mass, tk.Luminosity)
		mc := s.mcDU + (1-s.lambda)*(s.tpagb.CoreMass(age)-s.mcDU)
		tk.CoreMass = math.Max(s.mcBAGB, mc)

	default:
		tk.Mass = s.rem.mass
		tk.CoreMass = s.rem.mass
		tk.Luminosity, tk.Radius = s.rem.evaluate(age)
	}
	return tk
}

// Advance evaluates the star at age and stores the result as its current tick.
func (s *Star) Advance(age float64) Tick {
	s.current = s.Evaluate(age)
	return s.current
}

// Current returns the most recently advanced tick.
func (s *Star) Current() Tick {
	return s.current
}
