package stellar

import "math"

// Physical constants in SI units.
const (
	StefanBoltzmann = 5.670374419e-8
	SolarLuminosity = 3.86e26  // W
	SolarRadius     = 6.9634e8 // m
	SolarBolometric = 4.74     // absolute bolometric magnitude of the Sun
)

// EffectiveTemperature returns the surface temperature in kelvin of a body
// with luminosity l and radius r in solar units. It is zero for a body
// without a surface.
func EffectiveTemperature(l, r float64) float64 {
	if l <= 0 || r <= 0 {
		return 0
	}
	rm := r * SolarRadius
	return math.Pow(l*SolarLuminosity/(4*math.Pi*rm*rm*StefanBoltzmann), 0.25)
}

// spectralBounds are the lower temperature bounds of each class, hottest first.
var spectralBounds = []struct {
	min   float64
	class string
}{
	{30000, "O"},
	{10000, "B"},
	{7500, "A"},
	{6000, "F"},
	{5200, "G"},
	{3700, "K"},
	{2400, "M"},
}

// SpectralClasses lists the Harvard classes from hottest to coolest.
var SpectralClasses = []string{"O", "B", "A", "F", "G", "K", "M"}

// SpectralClass returns the Harvard class for temperature t, or "-" when
// t is below the coolest class.
func SpectralClass(t float64) string {
	for _, b := range spectralBounds {
		if t >= b.min {
			return b.class
		}
	}
	return "-"
}

// BlackbodyColor approximates the sRGB colour of a blackbody at temperature t.
func BlackbodyColor(t float64) (r, g, b uint8) {
	h := t / 100
	var rf, gf, bf float64
	if t < 6600 {
		rf = 255
		gf = 99.4708025861*math.Log(h) - 161.1195681661
	} else {
		rf = 329.698727446 * math.Pow(h-60, -0.1332047592)
		gf = 288.1221695283 * math.Pow(h-60, -0.0755148492)
	}
	switch {
	case t > 6600:
		bf = 255
	case t < 1900:
		bf = 0
	default:
		bf = 138.5177312231*math.Log(h-10) - 305.0447927307
	}
	return channel(rf), channel(gf), channel(bf)
}

func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(clamp(v, 0, 255) + 0.5)
}

// AbsoluteMagnitude returns the absolute bolometric magnitude for
// luminosity l in solar units.
func AbsoluteMagnitude(l float64) float64 {
	return SolarBolometric - 2.5*math.Log10(l)
}

// LuminosityFromMagnitude inverts AbsoluteMagnitude.
func LuminosityFromMagnitude(mag float64) float64 {
	return math.Pow(100, (SolarBolometric-mag)/5)
}

// TemperatureFromBV converts a B−V colour index to temperature (Ballesteros 2012).
func TemperatureFromBV(bv float64) float64 {
	return 4600 * (1/(0.92*bv+1.7) + 1/(0.92*bv+0.62))
}
