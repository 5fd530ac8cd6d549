package stellar

// Phase is an evolutionary phase. Phases are ordered: a star only moves
// forward through them.
type Phase int

const (
	DeeplyConvectiveMainSequence Phase = iota
	MainSequence
	HertzsprungGap
	GiantBranch
	CoreHeliumBurning
	EarlyAGB
	ThermallyPulsingAGB
	CarbonOxygenWhiteDwarf
	OxygenNeonWhiteDwarf
	NeutronStar
	BlackHole
	MasslessRemnant
)

// Phases lists every phase in lifecycle order.
var Phases = []Phase{
	DeeplyConvectiveMainSequence, MainSequence, HertzsprungGap, GiantBranch,
	CoreHeliumBurning, EarlyAGB, ThermallyPulsingAGB,
	CarbonOxygenWhiteDwarf, OxygenNeonWhiteDwarf, NeutronStar, BlackHole, MasslessRemnant,
}

var phaseNames = map[Phase][2]string{
	DeeplyConvectiveMainSequence: {"Deeply convective main sequence", "CMS"},
	MainSequence:                 {"Main sequence", "MS"},
	HertzsprungGap:               {"Hertzsprung gap", "HG"},
	GiantBranch:                  {"First giant branch", "GB"},
	CoreHeliumBurning:            {"Core helium burning", "CHeB"},
	EarlyAGB:                     {"Early asymptotic giant branch", "EAGB"},
	ThermallyPulsingAGB:          {"Thermally pulsing asymptotic giant branch", "TPAGB"},
	CarbonOxygenWhiteDwarf:       {"Carbon/oxygen white dwarf", "COWD"},
	OxygenNeonWhiteDwarf:         {"Oxygen/neon white dwarf", "ONeWD"},
	NeutronStar:                  {"Neutron star", "NS"},
	BlackHole:                    {"Black hole", "BH"},
	MasslessRemnant:              {"Massless remnant", "MR"},
}

// String returns the descriptive phase name.
func (p Phase) String() string {
	if n, ok := phaseNames[p]; ok {
		return n[0]
	}
	return "Unknown"
}

// Short returns the conventional abbreviation, e.g. "TPAGB".
func (p Phase) Short() string {
	if n, ok := phaseNames[p]; ok {
		return n[1]
	}
	return "?"
}

// IsRemnant reports whether p is a terminal phase.
func (p Phase) IsRemnant() bool {
	return p >= CarbonOxygenWhiteDwarf
}

// IsWhiteDwarf reports whether p is a white-dwarf phase.
func (p Phase) IsWhiteDwarf() bool {
	return p == CarbonOxygenWhiteDwarf || p == OxygenNeonWhiteDwarf
}

// ParsePhase maps an abbreviation back to its phase.
func ParsePhase(s string) (Phase, bool) {
	for p, n := range phaseNames {
		if n[1] == s {
			return p, true
		}
	}
	return 0, false
}
