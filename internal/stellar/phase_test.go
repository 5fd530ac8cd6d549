package stellar

import "testing"

func TestPhaseNames(t *testing.T) {
	for _, p := range Phases {
		t.Run(p.Short(), func(t *testing.T) {
			if p.String() == "Unknown" || p.Short() == "?" {
				t.Errorf("phase %d has no name", int(p))
			}
			got, ok := ParsePhase(p.Short())
			if !ok || got != p {
				t.Errorf("ParsePhase(%q) = %v, %v; want %v", p.Short(), got, ok, p)
			}
		})
	}

	if _, ok := ParsePhase("XX"); ok {
		t.Errorf("ParsePhase(%q) ok = true, want false", "XX")
	}
	if got := Phase(99).String(); got != "Unknown" {
		t.Errorf("Phase(99).String() = %q, want Unknown", got)
	}
}

func TestPhaseKinds(t *testing.T) {
	tests := []struct {
		phase   Phase
		remnant bool
		dwarf   bool
	}{
		{MainSequence, false, false},
		{ThermallyPulsingAGB, false, false},
		{CarbonOxygenWhiteDwarf, true, true},
		{OxygenNeonWhiteDwarf, true, true},
		{NeutronStar, true, false},
		{BlackHole, true, false},
		{MasslessRemnant, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.phase.Short(), func(t *testing.T) {
			if got := tt.phase.IsRemnant(); got != tt.remnant {
				t.Errorf("IsRemnant() = %v, want %v", got, tt.remnant)
			}
			if got := tt.phase.IsWhiteDwarf(); got != tt.dwarf {
				t.Errorf("IsWhiteDwarf() = %v, want %v", got, tt.dwarf)
			}
		})
	}
}
