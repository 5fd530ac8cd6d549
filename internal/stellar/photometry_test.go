package stellar

import (
	"math"
	"testing"
)

func TestEffectiveTemperature(t *testing.T) {
	tests := []struct {
		name    string
		l, r    float64
		wantMin float64
		wantMax float64
	}{
		{"sun", 1, 1, 5770, 5790},
		{"no luminosity", 0, 1, 0, 0},
		{"no radius", 1, 0, 0, 0},
		{"hot compact", 1, 0.01, 57000, 58500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveTemperature(tt.l, tt.r)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("EffectiveTemperature(%v, %v) = %v, want between %v and %v",
					tt.l, tt.r, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestSpectralClass(t *testing.T) {
	tests := []struct {
		temp float64
		want string
	}{
		{40000, "O"},
		{30000, "O"},
		{20000, "B"},
		{8000, "A"},
		{6500, "F"},
		{5780, "G"},
		{4500, "K"},
		{3000, "M"},
		{1000, "-"},
		{0, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := SpectralClass(tt.temp); got != tt.want {
				t.Errorf("SpectralClass(%v) = %q, want %q", tt.temp, got, tt.want)
			}
		})
	}
}

func TestBlackbodyColor(t *testing.T) {
	tests := []struct {
		name  string
		temp  float64
		check func(r, g, b uint8) bool
	}{
		{"cool star is red", 3000, func(r, g, b uint8) bool { return r == 255 && b < g && g < r }},
		{"hot star is blue-white", 20000, func(r, g, b uint8) bool { return b == 255 && r < b }},
		{"very cool has no blue", 1500, func(r, g, b uint8) bool { return b == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := BlackbodyColor(tt.temp)
			if !tt.check(r, g, b) {
				t.Errorf("BlackbodyColor(%v) = (%d, %d, %d)", tt.temp, r, g, b)
			}
		})
	}
}

func TestMagnitudeRoundTrip(t *testing.T) {
	if got := AbsoluteMagnitude(1); got != SolarBolometric {
		t.Errorf("AbsoluteMagnitude(1) = %v, want %v", got, SolarBolometric)
	}
	if got := AbsoluteMagnitude(100); math.Abs(got-(SolarBolometric-5)) > 1e-12 {
		t.Errorf("AbsoluteMagnitude(100) = %v, want %v", got, SolarBolometric-5)
	}
	for _, l := range []float64{1e-4, 0.5, 1, 3e5} {
		if got := LuminosityFromMagnitude(AbsoluteMagnitude(l)); !relClose(got, l, 1e-12) {
			t.Errorf("LuminosityFromMagnitude(AbsoluteMagnitude(%v)) = %v", l, got)
		}
	}
}

func TestTemperatureFromBV(t *testing.T) {
	// The Sun has B-V of about 0.65.
	if got := TemperatureFromBV(0.65); got < 5600 || got > 5900 {
		t.Errorf("TemperatureFromBV(0.65) = %v, want near 5780", got)
	}
	if TemperatureFromBV(0) <= TemperatureFromBV(1) {
		t.Errorf("TemperatureFromBV should fall as B-V rises")
	}
}
