// Package stellar implements analytic single-star evolution after Hurley,
// Pols & Tout (2000): given a zero-age mass and metallicity it gives the
// phase, luminosity, radius and core mass of the star at any age.
//
// Masses and luminosities are in solar units, ages in Myr.
package stellar

import (
	"errors"
	"fmt"
	"math"
)

// Input validation errors.
var (
	ErrInvalidMass        = errors.New("stellar: mass must be finite and positive")
	ErrInvalidMetallicity = errors.New("stellar: metallicity must be finite and positive")
)

// Range over which the underlying fits were calibrated. Stars outside it
// are built but raise a range diagnostic.
const (
	MinMass        = 0.1
	MaxMass        = 100.0
	MinMetallicity = 1e-4
	MaxMetallicity = 0.03
)

// Boundaries are the ages in Myr that partition a star's life.
type Boundaries struct {
	HookAge           float64 // start of the main-sequence hook
	MainSequenceEnd   float64
	HertzsprungGapEnd float64 // base of the giant branch
	HeliumIgnition    float64
	HeliumBurningEnd  float64 // base of the asymptotic giant branch
	EarlyAGBEnd       float64 // second dredge-up
	TerminalAge       float64
}

// Ages returns the six phase boundaries in order.
func (b Boundaries) Ages() [6]float64 {
	return [6]float64{b.MainSequenceEnd, b.HertzsprungGapEnd, b.HeliumIgnition,
		b.HeliumBurningEnd, b.EarlyAGBEnd, b.TerminalAge}
}

// CoreMasses are the core masses at each boundary age.
type CoreMasses struct {
	MainSequenceEnd   float64
	HertzsprungGapEnd float64
	HeliumIgnition    float64
	HeliumBurningEnd  float64
	EarlyAGBEnd       float64
	Terminal          float64
}

// Values returns the core masses in boundary order.
func (c CoreMasses) Values() [6]float64 {
	return [6]float64{c.MainSequenceEnd, c.HertzsprungGapEnd, c.HeliumIgnition,
		c.HeliumBurningEnd, c.EarlyAGBEnd, c.Terminal}
}

var boundaryNames = [6]string{"main_sequence_end", "hertzsprung_gap_end", "helium_ignition",
	"helium_burning_end", "early_agb_end", "terminal_age"}

// Star is the per-star model. Everything except the current tick is fixed
// at construction; a Star must not be advanced from two goroutines at once.
type Star struct {
	mass        float64
	metallicity float64
	hydrogen    float64
	helium      float64

	coef   Coefficients
	crit   CriticalMasses
	regime Regime
	rates  Rates
	zams   ZAMS
	f      fits
	law    CoreLaw
	ms     mainSequence

	lumBGB, lumHeI, lumMinHe, lumBAGB float64
	lumEHG, radEHG                    float64 // end of the Hertzsprung gap
	mcBGB, mcHeI, mcBAGB, mcEHG       float64
	hgCoreFraction                    float64 // core mass at gap start over mcEHG

	gb    GiantBranchCore
	he    heliumBurning
	eagb  GiantBranchCore
	tpagb GiantBranchCore

	hasTPAGB bool
	mcSN     float64 // supernova core-mass threshold
	mcEnd    float64 // final core mass
	mcDU     float64 // core mass at the end of the early AGB
	lambda   float64 // third dredge-up efficiency

	emptyGB, emptyEAGB bool

	bounds Boundaries
	cores  CoreMasses
	rem    remnant

	reporter Reporter
	current  Tick
}

// Option configures a Star.
type Option func(*Star)

// WithReporter routes the star's diagnostics to r.
func WithReporter(r Reporter) Option {
	return func(s *Star) {
		if r != nil {
			s.reporter = r
		}
	}
}

// New builds the model for a star of zero-age mass and metallicity.
func New(mass, metallicity float64, opts ...Option) (*Star, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidMass, mass)
	}
	if !(metallicity > 0) || math.IsInf(metallicity, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidMetallicity, metallicity)
	}
	s := &Star{
		mass:        mass,
		metallicity: metallicity,
		hydrogen:    0.76 - 3*metallicity,
		helium:      0.24 + 2*metallicity,
		reporter:    discard{},
	}
	for _, o := range opts {
		o(s)
	}
	if mass < MinMass || mass > MaxMass {
		s.report(StageRange, "mass", mass, "outside calibrated range")
	}
	if metallicity < MinMetallicity || metallicity > MaxMetallicity {
		s.report(StageRange, "metallicity", metallicity, "outside calibrated range")
	}
	s.build()
	s.current = s.Evaluate(0)
	return s, nil
}

func (s *Star) report(stage Stage, quantity string, v float64, detail string) {
	s.reporter.Report(Diagnostic{
		Mass:        s.mass,
		Metallicity: s.metallicity,
		Stage:       stage,
		Quantity:    quantity,
		Value:       v,
		Detail:      detail,
	})
}

// build computes every constant of the model in dependency order.
func (s *Star) build() {
	m, z := s.mass, s.metallicity

	s.coef = ComputeCoefficients(z)
	if name, v, ok := s.coef.finite(); !ok {
		s.report(StageCoefficients, name, v, "non-finite")
	}
	s.crit = NewCriticalMasses(z)
	s.regime = s.crit.Regime(m)
	s.rates = NewRates(m)
	ck := checker{s, StageCritical}
	ck.finite("hook", s.crit.Hook)
	ck.finite("helium_flash", s.crit.HeliumFlash)
	ck.finite("first_giant_branch", s.crit.FirstGiantBranch)

	s.f = fits{c: &s.coef, cm: s.crit}
	s.zams = NewZAMS(m, &s.coef)
	ck.stage = StageZAMS
	ck.finite("luminosity", s.zams.Luminosity)
	ck.finite("radius", s.zams.Radius)

	s.ms = newMainSequence(m, z, s.hydrogen, s.f, s.zams)
	s.law = s.f.law(m)
	s.buildGiant()
	s.buildAGB()
	s.checkBoundaries()
}

// buildGiant covers the Hertzsprung gap, the giant branch and core
// helium burning.
func (s *Star) buildGiant() {
	m, f := s.mass, s.f
	tBGB := f.ageBGB(m)

	s.lumBGB = f.lumBGB(m)
	s.lumHeI = f.lumHeI(m)
	s.lumMinHe = f.lumMinHe(m)
	s.lumBAGB = f.lumBAGB(m)
	s.mcBAGB = f.coreMassBAGB(m)
	s.mcHeI = f.coreMassHeI(m)
	// The fitted base-of-giant-branch core only holds above the helium
	// flash mass; below it the core follows the core law.
	if m >= s.crit.HeliumFlash {
		s.mcBGB = f.coreMassBGB(m)
	} else {
		s.mcBGB = s.law.CoreMass(s.lumBGB)
	}

	radHeI := s.radiusAtHeliumIgnition()
	if m < s.crit.FirstGiantBranch {
		s.lumEHG, s.radEHG = s.lumBGB, f.radGB(m, s.lumBGB)
	} else {
		s.lumEHG, s.radEHG = s.lumHeI, radHeI
	}
	switch s.regime {
	case Low, Intermediate:
		s.mcEHG = s.mcBGB
	default:
		s.mcEHG = s.mcHeI
	}
	m525 := math.Pow(m, 5.25)
	s.hgCoreFraction = (1.586 + m525) / (2.434 + 1.02*m525)

	tHeI := tBGB
	if s.regime == High {
		s.emptyGB = true
	} else {
		s.gb = NewGiantBranchCore(s.law, GiantParams{
			Rate:     s.rates.Hydrogen,
			StartAge: tBGB,
			StartLum: s.lumBGB,
			EndLum:   s.lumHeI,
		})
		tHeI = s.gb.EndAge()
	}

	s.he = newHeliumBurning(m, s.regime, f, s.mcHeI, s.lumHeI, s.lumMinHe, s.lumBAGB, radHeI)

	s.bounds.HookAge = s.ms.hookAge
	s.bounds.MainSequenceEnd = s.ms.endAge
	s.bounds.HertzsprungGapEnd = tBGB
	s.bounds.HeliumIgnition = tHeI
	s.bounds.HeliumBurningEnd = tHeI + s.he.duration

	s.cores.MainSequenceEnd = s.hgCoreFraction * s.mcEHG
	s.cores.HertzsprungGapEnd = s.mcEHG
	s.cores.HeliumIgnition = s.mcHeI
	s.cores.HeliumBurningEnd = s.mcBAGB

	ck := checker{s, StageBoundaries}
	ck.finite("lum_bgb", s.lumBGB)
	ck.finite("lum_hei", s.lumHeI)
	ck.finite("lum_min_he", s.lumMinHe)
	ck.finite("lum_bagb", s.lumBAGB)
	ck.finite("rad_ehg", s.radEHG)
	ck.finite("blue_loop", s.he.blueLoop)
	ck.finite("xi", s.he.xi)
	ck.finite("rad_min_he", s.he.radMin)
	ck.stage = StageCore
	ck.finite("mc_bgb", s.mcBGB)
	ck.finite("mc_hei", s.mcHeI)
	ck.finite("mc_bagb", s.mcBAGB)
	ck.finite("mc_ehg", s.mcEHG)
}

// radiusAtHeliumIgnition is R_HeI: the giant-branch radius below M_FGB,
// the blue-loop minimum radius above 12 Msun, blended between.
func (s *Star) radiusAtHeliumIgnition() float64 {
	m, mfgb, f := s.mass, s.crit.FirstGiantBranch, s.f
	switch {
	case m <= mfgb:
		return f.radGB(m, s.lumHeI)
	case m >= math.Max(mfgb, 12):
		return f.radMinHe(m, s.mcHeI)
	}
	mu := math.Log10(m/12) / math.Log10(mfgb/12)
	rmin := f.radMinHe(m, s.mcHeI)
	return rmin * math.Pow(f.radGB(m, s.lumHeI)/rmin, mu)
}

// buildAGB covers the early and thermally pulsing AGB and picks the remnant.
func (s *Star) buildAGB() {
	m := s.mass
	tBAGB := s.bounds.HeliumBurningEnd

	s.mcSN = math.Max(ChandrasekharMass, 0.773*s.mcBAGB-0.35)
	s.mcEnd = math.Min(m, s.mcSN)
	s.lambda = math.Min(0.9, 0.3+0.001*math.Pow(m, 5))

	start := s.law.CoreMass(s.lumBAGB)

	// Without a second dredge-up the early AGB runs until the final core.
	target := s.mcEnd
	if du := 0.44*s.mcBAGB + 0.448; s.mcBAGB <= 2.25 && du < s.mcEnd {
		target = du
		s.hasTPAGB = true
	}
	if target <= start {
		target = start
		s.emptyEAGB = true
	}
	if target >= s.mcEnd {
		s.hasTPAGB = false
	}
	s.mcDU = target

	lumDU := s.law.Luminosity(target)
	s.eagb = NewGiantBranchCore(s.law, GiantParams{
		Rate:     s.rates.Helium,
		StartAge: tBAGB,
		StartLum: s.lumBAGB,
		EndLum:   lumDU,
	})
	tDU := math.Max(tBAGB, s.eagb.EndAge())
	if s.emptyEAGB {
		tDU = tBAGB
	}
	tEnd := tDU

	if s.hasTPAGB {
		// Third dredge-up returns a fraction lambda of the growth to the
		// envelope, so the model core must overshoot the final core.
		gbTarget := target + (s.mcEnd-target)/(1-s.lambda)
		gp := GiantParams{
			Rate:     s.rates.Combined,
			StartAge: tDU,
			StartLum: lumDU,
			EndLum:   s.law.Luminosity(gbTarget),
		}
		// A core starting below the crossover keeps the asymptote that
		// continuity at the crossover gives.
		if mx, _ := s.law.Crossover(); target >= mx {
			q := s.law.Q
			gp.HighAsymptote = tDU + math.Pow(target, 1-q)/((q-1)*s.rates.Combined*s.law.B)
		}
		s.tpagb = NewGiantBranchCore(s.law, gp)
		tEnd = math.Max(tDU, s.tpagb.EndAge())
	}

	s.bounds.EarlyAGBEnd = tDU
	s.bounds.TerminalAge = tEnd
	s.cores.EarlyAGBEnd = math.Max(s.mcBAGB, target)
	s.cores.Terminal = s.cores.EarlyAGBEnd
	if s.hasTPAGB {
		s.cores.Terminal = math.Max(s.mcBAGB, s.mcEnd)
	}

	phase := classifyRemnant(s.mcEnd, s.mcSN, s.mcBAGB)
	s.rem = newRemnant(phase, tEnd, s.metallicity, s.mcEnd, s.mcSN, s.mcBAGB)

	ck := checker{s, StageCore}
	ck.finite("mc_sn", s.mcSN)
	ck.finite("mc_du", s.mcDU)
	ck.finite("lum_du", lumDU)
}

// checkBoundaries reports non-finite ages, ages out of order, and core
// masses that shrink. Empty giant-branch, early-AGB and thermally-pulsing
// intervals are legitimate and not reported.
func (s *Star) checkBoundaries() {
	ages := s.bounds.Ages()
	allowEmpty := [6]bool{false, false, s.emptyGB, false, s.emptyEAGB, !s.hasTPAGB}
	prev := 0.0
	for i, a := range ages {
		switch {
		case !isFinite(a):
			s.report(StageBoundaries, boundaryNames[i], a, "non-finite")
		case a < prev || (a == prev && !allowEmpty[i]):
			s.report(StageMonotonic, boundaryNames[i], a, fmt.Sprintf("not after %g", prev))
		}
		if isFinite(a) {
			prev = a
		}
	}

	cores := s.cores.Values()
	for i := 1; i < len(cores); i++ {
		if cores[i] < cores[i-1] {
			s.report(StageCore, boundaryNames[i], cores[i], fmt.Sprintf("core shrinks from %g", cores[i-1]))
		}
	}
}

// Mass returns the zero-age mass.
func (s *Star) Mass() float64 { return s.mass }

// Metallicity returns Z.
func (s *Star) Metallicity() float64 { return s.metallicity }

// Composition returns the hydrogen and helium mass fractions.
func (s *Star) Composition() (x, y float64) { return s.hydrogen, s.helium }

// Regime returns the mass regime.
func (s *Star) Regime() Regime { return s.regime }

// Boundaries returns the phase boundary ages.
func (s *Star) Boundaries() Boundaries { return s.bounds }

// CoreMasses returns the core masses at the boundary ages.
func (s *Star) CoreMasses() CoreMasses { return s.cores }

// Coefficients returns the metallicity-dependent coefficients.
func (s *Star) Coefficients() Coefficients { return s.coef }

// CriticalMasses returns the metallicity-dependent mass thresholds.
func (s *Star) CriticalMasses() CriticalMasses { return s.crit }

// Rates returns the core growth rate constants.
func (s *Star) Rates() Rates { return s.rates }

// ZAMS returns the zero-age main-sequence state.
func (s *Star) ZAMS() ZAMS { return s.zams }

// CoreLaw returns the star's core-mass/luminosity relation.
func (s *Star) CoreLaw() CoreLaw { return s.law }

// Remnant returns the terminal phase the star will reach.
func (s *Star) Remnant() Phase { return s.rem.phase }
