package stellar

import (
	"math"
	"testing"
)

func TestNewCriticalMassesSolar(t *testing.T) {
	cm := NewCriticalMasses(SolarMetallicity)

	if !relClose(cm.Hook, 1.0185, 1e-12) {
		t.Errorf("Hook = %v, want 1.0185", cm.Hook)
	}
	if !relClose(cm.HeliumFlash, 1.995, 1e-12) {
		t.Errorf("HeliumFlash = %v, want 1.995", cm.HeliumFlash)
	}
	if !relClose(cm.FirstGiantBranch, 13.03236116660008, 1e-9) {
		t.Errorf("FirstGiantBranch = %v, want 13.0324", cm.FirstGiantBranch)
	}
}

func TestCriticalMassesOrdered(t *testing.T) {
	for _, z := range testMetallicities {
		cm := NewCriticalMasses(z)
		if !(cm.Hook < cm.HeliumFlash && cm.HeliumFlash < cm.FirstGiantBranch) {
			t.Errorf("Z=%v: critical masses %+v not increasing", z, cm)
		}
	}
}

func TestRegime(t *testing.T) {
	cm := NewCriticalMasses(SolarMetallicity)
	tests := []struct {
		mass float64
		want Regime
	}{
		{0.5, Low},
		{1.994, Low},
		{1.995, Intermediate},
		{5, Intermediate},
		{cm.FirstGiantBranch, Intermediate},
		{20, High},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := cm.Regime(tt.mass); got != tt.want {
				t.Errorf("Regime(%v) = %v, want %v", tt.mass, got, tt.want)
			}
		})
	}
}

func TestNewRates(t *testing.T) {
	tests := []struct {
		name  string
		mass  float64
		wantH float64
	}{
		{"one solar mass floors at -4.8", 1, math.Pow(10, -4.8)},
		{"low mass", 0.5, math.Pow(10, -4.8)},
		{"high mass caps at -4.1+0.14M", 10, math.Pow(10, -4.1+1.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRates(tt.mass)
			if !relClose(r.Hydrogen, tt.wantH, 1e-12) {
				t.Errorf("Hydrogen = %v, want %v", r.Hydrogen, tt.wantH)
			}
			if r.Helium != heliumRate {
				t.Errorf("Helium = %v, want %v", r.Helium, heliumRate)
			}
			want := r.Hydrogen * r.Helium / (r.Hydrogen + r.Helium)
			if !relClose(r.Combined, want, 1e-12) {
				t.Errorf("Combined = %v, want %v", r.Combined, want)
			}
		})
	}
}
