package stellar

import "math"

// CoreLaw is the two-segment core-mass/luminosity relation of giant stars:
// L = D·Mc^p below the crossover core mass and L = B·Mc^q above it.
type CoreLaw struct {
	P, Q float64
	B, D float64
}

// coreLawFor builds the law for a star of mass m. Below the helium-flash
// mass the low-mass constants apply; above 2.5 Msun the high-mass ones;
// between them each constant is interpolated linearly in mass.
func coreLawFor(m float64, cm CriticalMasses, zeta float64) CoreLaw {
	f := func(lo, hi float64) float64 {
		return lerp(m, cm.HeliumFlash, 2.5, lo, hi)
	}
	d0 := 5.37 + 0.135*zeta
	return CoreLaw{
		P: f(6, 5),
		Q: f(3, 2),
		B: math.Max(3e4, 500+1.75e4*math.Pow(m, 0.6)),
		D: pow10(f(d0, math.Max(-1.0, math.Max(0.975*d0-0.18*m, 0.5*d0-0.06*m)))),
	}
}

// Crossover returns the core mass and luminosity where the two segments meet.
func (l CoreLaw) Crossover() (mc, lum float64) {
	mc = math.Pow(l.B/l.D, 1/(l.P-l.Q))
	return mc, l.Luminosity(mc)
}

// Luminosity returns the luminosity of a giant with core mass mc.
func (l CoreLaw) Luminosity(mc float64) float64 {
	return math.Min(l.B*math.Pow(mc, l.Q), l.D*math.Pow(mc, l.P))
}

// CoreMass inverts Luminosity.
func (l CoreLaw) CoreMass(lum float64) float64 {
	if _, lx := l.Crossover(); lum <= lx {
		return math.Pow(lum/l.D, 1/l.P)
	}
	return math.Pow(lum/l.B, 1/l.Q)
}

// GiantParams configures one instance of the giant core-growth model.
type GiantParams struct {
	Rate     float64 // core growth rate constant A
	StartAge float64 // ta
	StartLum float64 // La
	EndLum   float64 // Lb

	// HighAsymptote, when positive, replaces the continuity-derived
	// asymptotic age of the high-luminosity segment.
	HighAsymptote float64
}

// GiantBranchCore is the closed-form solution of core growth at rate
// dMc/dt = A·L(Mc) along a CoreLaw, started from (StartAge, StartLum).
type GiantBranchCore struct {
	law  CoreLaw
	rate float64

	start     float64
	crossover float64 // age at which the core reaches the crossover mass
	lowInf    float64 // asymptotic age of the D·Mc^p segment
	highInf   float64 // asymptotic age of the B·Mc^q segment
	lx        float64
	end       float64
}

// NewGiantBranchCore solves the model for the given law and parameters.
// A star that starts above the crossover luminosity runs on the high
// segment only.
func NewGiantBranchCore(law CoreLaw, gp GiantParams) GiantBranchCore {
	g := GiantBranchCore{law: law, rate: gp.Rate, start: gp.StartAge}
	_, g.lx = law.Crossover()
	p := law.P

	if gp.StartLum < g.lx {
		g.lowInf = gp.StartAge + g.lowSpan(gp.StartLum)
		g.crossover = g.lowInf - (g.lowInf-gp.StartAge)*math.Pow(gp.StartLum/g.lx, (p-1)/p)
		g.highInf = g.crossover + g.highSpan(g.lx)
	} else {
		g.crossover = gp.StartAge
		g.highInf = gp.StartAge + g.highSpan(gp.StartLum)
		g.lowInf = g.crossover + g.lowSpan(g.lx)
	}
	if gp.HighAsymptote > 0 {
		g.highInf = gp.HighAsymptote
	}
	g.end = g.AgeAtLuminosity(gp.EndLum)
	return g
}

// lowSpan is t_inf - t on the D·Mc^p segment at luminosity lum.
func (g GiantBranchCore) lowSpan(lum float64) float64 {
	p, d := g.law.P, g.law.D
	return math.Pow(d/lum, (p-1)/p) / (g.rate * d * (p - 1))
}

// highSpan is t_inf - t on the B·Mc^q segment at luminosity lum.
func (g GiantBranchCore) highSpan(lum float64) float64 {
	q, b := g.law.Q, g.law.B
	return math.Pow(b/lum, (q-1)/q) / (g.rate * b * (q - 1))
}

// CoreMass returns the core mass at age t.
func (g GiantBranchCore) CoreMass(t float64) float64 {
	if t < g.crossover {
		p := g.law.P
		return math.Pow((p-1)*g.rate*g.law.D*(g.lowInf-t), 1/(1-p))
	}
	q := g.law.Q
	return math.Pow((q-1)*g.rate*g.law.B*(g.highInf-t), 1/(1-q))
}

// Luminosity returns the luminosity at age t, the lesser of the two law
// segments at the current core mass.
func (g GiantBranchCore) Luminosity(t float64) float64 {
	return g.law.Luminosity(g.CoreMass(t))
}

// AgeAtLuminosity inverts Luminosity, choosing the segment that contains lum.
func (g GiantBranchCore) AgeAtLuminosity(lum float64) float64 {
	if lum < g.lx {
		return g.lowInf - g.lowSpan(lum)
	}
	return g.highInf - g.highSpan(lum)
}

// AgeAtCoreMass inverts CoreMass.
func (g GiantBranchCore) AgeAtCoreMass(mc float64) float64 {
	if mx, _ := g.law.Crossover(); mc < mx {
		p := g.law.P
		return g.lowInf - math.Pow(mc, 1-p)/((p-1)*g.rate*g.law.D)
	}
	q := g.law.Q
	return g.highInf - math.Pow(mc, 1-q)/((q-1)*g.rate*g.law.B)
}

// StartAge returns the age the model was anchored at.
func (g GiantBranchCore) StartAge() float64 { return g.start }

// EndAge returns the age at which the luminosity reaches the end luminosity.
func (g GiantBranchCore) EndAge() float64 { return g.end }

// CrossoverAge returns the age at which the core reaches the crossover mass.
func (g GiantBranchCore) CrossoverAge() float64 { return g.crossover }
