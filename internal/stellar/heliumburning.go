package stellar

import "math"

// heliumBurning holds the core-helium-burning track. Progress through the
// phase is measured by tau in [0, 1]. Stars that perform a blue loop
// spend the interval [tauX, tauY] on it.
type heliumBurning struct {
	mass     float64
	f        fits
	duration float64

	blueLoop   float64 // fraction of the phase spent on the blue loop
	tauX, tauY float64

	lumHeI, lumBAGB float64
	lumX, radX      float64 // state at the start of the blue loop
	lumY, radY      float64 // state at its end
	radMin          float64 // smallest radius reached on the loop
	xi              float64
}

func newHeliumBurning(m float64, reg Regime, f fits, mcHeI, lumHeI, lumMinHe, lumBAGB, radHeI float64) heliumBurning {
	b := &f.c.B
	mf, mfgb := f.cm.HeliumFlash, f.cm.FirstGiantBranch
	h := heliumBurning{
		mass:     m,
		f:        f,
		duration: f.durationHe(m, mcHeI),
		lumHeI:   lumHeI,
		lumBAGB:  lumBAGB,
	}

	switch reg {
	case Low:
		h.blueLoop = 1
		h.lumX = f.lumZAHB(m, mcHeI)
		h.radX = f.radZAHB(m, mcHeI)
	case Intermediate:
		// Merged form of the two-term expression; the literal form takes a
		// fractional power of a negative number near M_FGB.
		alpha := 1 - b[45]*math.Pow(mf/mfgb, 0.414)
		h.blueLoop = b[45]*math.Pow(m/mfgb, 0.414) +
			alpha*math.Pow(math.Log(m/mfgb)/math.Log(mf/mfgb), b[46])
		h.lumX = lumMinHe
		h.radX = f.radGB(m, lumMinHe)
	case High:
		// Massive stars whose minimum radius exceeds the AGB radius at
		// ignition have no blue loop.
		loop := func(m float64) float64 {
			r := math.Max(1-f.radMinHe(m, mcHeI)/f.radAGB(m, f.lumHeI(m)), 1e-12)
			return math.Pow(m, b[48]) * math.Pow(r, b[49])
		}
		h.blueLoop = (1 - b[47]) * loop(m) / loop(mfgb)
		if h.blueLoop < 1e-10 {
			h.blueLoop = 0
		}
		h.lumX = lumHeI
		h.radX = radHeI
	}
	h.blueLoop = clamp(h.blueLoop, 0, 1)

	if reg == Intermediate {
		h.tauX = 1 - h.blueLoop
	}
	h.tauY = 1
	if reg == High {
		h.tauY = h.blueLoop
	}

	radMinHe := f.radMinHe(m, mcHeI)
	h.xi = clamp(radMinHe/h.radX, 0.4, 2.5)
	h.radMin = math.Min(radMinHe, h.radX)
	h.lumY = h.luminosity(h.tauY)
	h.radY = f.radAGB(m, h.lumY)
	return h
}

func (h heliumBurning) luminosity(tau float64) float64 {
	if tau >= 1 {
		return h.lumBAGB
	}
	if tau >= h.tauX {
		lambda := math.Pow((tau-h.tauX)/(1-h.tauX), h.xi)
		return h.lumX * math.Pow(h.lumBAGB/h.lumX, lambda)
	}
	lambda := math.Pow((h.tauX-tau)/h.tauX, 3)
	return h.lumX * math.Pow(h.lumHeI/h.lumX, lambda)
}

// radius follows the giant branch before the loop, the asymptotic giant
// branch after it, and on the loop dips to radMin and back.
func (h heliumBurning) radius(tau float64) float64 {
	l := h.luminosity(tau)
	switch {
	case tau < h.tauX:
		return h.f.radGB(h.mass, l)
	case tau >= h.tauY:
		return h.f.radAGB(h.mass, l)
	}
	span := h.tauY - h.tauX
	rho := math.Cbrt(math.Log(h.radY/h.radMin))*(tau-h.tauX)/span -
		math.Cbrt(math.Log(h.radX/h.radMin))*(h.tauY-tau)/span
	return h.radMin * math.Exp(math.Abs(rho*rho*rho))
}
