package stellar

import "math"

// ChandrasekharMass is the white-dwarf mass limit in Msun.
const ChandrasekharMass = 1.44

const (
	neutronStarRadius    = 1.4e-5  // 10 km in Rsun
	schwarzschildPerMass = 4.24e-6 // Rsun per Msun
	blackHoleLuminosity  = 1e-10
)

// classifyRemnant picks the terminal phase. A final core mcEnd below the
// supernova threshold mcSN leaves a white dwarf whose composition follows
// the core mass at the base of the AGB. At or above the threshold the core
// collapses to a neutron star or a black hole.
func classifyRemnant(mcEnd, mcSN, mcBAGB float64) Phase {
	switch {
	case mcEnd < mcSN && mcBAGB < 1.6:
		return CarbonOxygenWhiteDwarf
	case mcEnd < mcSN:
		return OxygenNeonWhiteDwarf
	// The black-hole cut is taken on the base-of-AGB core, not on mcSN.
	// mcSN is 0.773·mcBAGB - 0.35, so a 20 Msun star at solar metallicity
	// has mcSN near 5.2 and would never exceed 7 Msun on that measure.
	case mcBAGB >= 7.0:
		return BlackHole
	default:
		return NeutronStar
	}
}

// remnant is the state of a star after its terminal age.
type remnant struct {
	phase Phase
	mass  float64
	birth float64
	z     float64
}

func newRemnant(phase Phase, birth, z, mcEnd, mcSN, mcBAGB float64) remnant {
	r := remnant{phase: phase, birth: birth, z: z}
	switch phase {
	case CarbonOxygenWhiteDwarf, OxygenNeonWhiteDwarf:
		r.mass = mcEnd
	case NeutronStar:
		r.mass = 1.17 + 0.09*mcSN
	case BlackHole:
		r.mass = mcBAGB
	}
	return r
}

// evaluate returns luminosity and radius at the given age.
func (r remnant) evaluate(age float64) (lum, rad float64) {
	t := math.Max(age-r.birth, 0)
	switch r.phase {
	case CarbonOxygenWhiteDwarf, OxygenNeonWhiteDwarf:
		a := 16.0
		if r.phase == OxygenNeonWhiteDwarf {
			a = 17.0
		}
		lum = 635 * r.mass * math.Pow(r.z, 0.4) / math.Pow(a*(t+0.1), 1.4)
		return lum, whiteDwarfRadius(r.mass)
	case NeutronStar:
		return 0.02 * math.Pow(r.mass, 2.0/3.0) / math.Pow(math.Max(t, 0.1), 2), neutronStarRadius
	case BlackHole:
		return blackHoleLuminosity, schwarzschildPerMass * r.mass
	default:
		return 0, 0
	}
}

// whiteDwarfRadius is the mass-radius relation of a degenerate dwarf,
// floored at the neutron-star radius near the Chandrasekhar limit.
func whiteDwarfRadius(m float64) float64 {
	x := math.Pow(ChandrasekharMass/m, 2.0/3.0) - math.Pow(m/ChandrasekharMass, 2.0/3.0)
	return math.Max(neutronStarRadius, 0.0115*math.Sqrt(math.Max(x, 0)))
}
