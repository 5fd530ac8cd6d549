package population

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Break masses and slopes of the Kroupa (2001) initial mass function.
const (
	kroupaBreakLow  = 0.08
	kroupaBreakHigh = 0.5
)

// KroupaIMF returns the relative number density dN/dm at mass m. The
// three power-law segments have slopes -0.3, -1.3 and -2.3 and join
// continuously at 0.08 and 0.5 Msun.
func KroupaIMF(m float64) float64 {
	switch {
	case m <= 0:
		return 0
	case m < kroupaBreakLow:
		return math.Pow(m, -0.3)
	case m < kroupaBreakHigh:
		return kroupaBreakLow * math.Pow(m, -1.3)
	default:
		return kroupaBreakLow * kroupaBreakHigh * math.Pow(m, -2.3)
	}
}

// Sampler draws star specifications from the IMF with metallicity uniform
// over a range. The same seed always yields the same stars.
type Sampler struct {
	MinMass        float64
	MaxMass        float64
	MinMetallicity float64
	MaxMetallicity float64
	Seed           uint64
}

// Validate checks the sampler's ranges.
func (s Sampler) Validate() error {
	if !(s.MinMass > 0) || !(s.MaxMass > s.MinMass) {
		return fmt.Errorf("population: mass range [%g, %g] is empty or non-positive", s.MinMass, s.MaxMass)
	}
	if !(s.MinMetallicity > 0) || s.MaxMetallicity < s.MinMetallicity {
		return fmt.Errorf("population: metallicity range [%g, %g] is empty or non-positive",
			s.MinMetallicity, s.MaxMetallicity)
	}
	return nil
}

// Sample returns n stars. Masses come from rejection sampling: proposals
// are uniform in ln m and accepted against m·ξ(m), the IMF per unit ln m.
func (s Sampler) Sample(n int) ([]Spec, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	src := rand.NewSource(s.Seed)
	lnMass := distuv.Uniform{Min: math.Log(s.MinMass), Max: math.Log(s.MaxMass), Src: src}
	accept := distuv.Uniform{Min: 0, Max: 1, Src: src}
	metal := distuv.Uniform{Min: s.MinMetallicity, Max: s.MaxMetallicity, Src: src}

	peak := s.peakDensity()
	specs := make([]Spec, 0, n)
	for len(specs) < n {
		m := math.Exp(lnMass.Rand())
		if accept.Rand()*peak > m*KroupaIMF(m) {
			continue
		}
		z := s.MinMetallicity
		if s.MaxMetallicity > s.MinMetallicity {
			z = metal.Rand()
		}
		specs = append(specs, Spec{
			Name:        fmt.Sprintf("star-%04d", len(specs)+1),
			Mass:        m,
			Metallicity: z,
		})
	}
	return specs, nil
}

// peakDensity is the largest m·ξ(m) over the mass range. The function
// rises to the lower break and falls after it.
func (s Sampler) peakDensity() float64 {
	peak := math.Max(s.MinMass*KroupaIMF(s.MinMass), s.MaxMass*KroupaIMF(s.MaxMass))
	if s.MinMass < kroupaBreakLow && s.MaxMass > kroupaBreakLow {
		peak = math.Max(peak, kroupaBreakLow*KroupaIMF(kroupaBreakLow))
	}
	return peak
}
