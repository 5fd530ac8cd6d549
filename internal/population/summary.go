package population

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/litescript/ls-stellar/internal/stellar"
)

// massBins is the number of log-mass histogram bins.
const massBins = 10

// Moments are the mean and standard deviation of a sample.
type Moments struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	N      int     `json:"n"`
}

func moments(x []float64) Moments {
	if len(x) == 0 {
		return Moments{}
	}
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		std = 0
	}
	return Moments{Mean: mean, StdDev: std, N: len(x)}
}

// Summary aggregates a population at one age.
type Summary struct {
	Age      float64        `json:"age_myr"`
	Count    int            `json:"count"`
	Phases   map[string]int `json:"phases"`
	Classes  map[string]int `json:"spectral_classes"`
	Remnants int            `json:"remnants"`

	Mass   Moments `json:"mass"`
	LogLum Moments `json:"log_luminosity"`
	LogRad Moments `json:"log_radius"`

	// MassDividers has one more entry than MassCounts; bin i counts
	// stars with log10 m in [MassDividers[i], MassDividers[i+1]).
	MassDividers []float64 `json:"log_mass_dividers"`
	MassCounts   []float64 `json:"log_mass_counts"`
}

// Summarize computes phase and spectral-class counts, moments of mass and
// of log luminosity and radius over luminous stars, and a log-mass
// histogram. Remnants count toward phases but not spectral classes.
func Summarize(age float64, ticks []stellar.Tick) Summary {
	s := Summary{
		Age:     age,
		Count:   len(ticks),
		Phases:  make(map[string]int),
		Classes: make(map[string]int),
	}

	var masses, logL, logR, logM []float64
	for _, tk := range ticks {
		s.Phases[tk.Phase.Short()]++
		if tk.Mass > 0 {
			masses = append(masses, tk.Mass)
			logM = append(logM, math.Log10(tk.Mass))
		}
		if tk.Phase.IsRemnant() {
			s.Remnants++
			continue
		}
		s.Classes[stellar.SpectralClass(tk.Temperature())]++
		if tk.Luminosity > 0 && tk.Radius > 0 {
			logL = append(logL, math.Log10(tk.Luminosity))
			logR = append(logR, math.Log10(tk.Radius))
		}
	}
	s.Mass = moments(masses)
	s.LogLum = moments(logL)
	s.LogRad = moments(logR)
	s.MassDividers, s.MassCounts = logMassHistogram(logM)
	return s
}

// logMassHistogram bins log masses into massBins equal-width bins.
func logMassHistogram(logM []float64) (dividers, counts []float64) {
	if len(logM) == 0 {
		return nil, nil
	}
	sort.Float64s(logM)
	lo, hi := floats.Min(logM), floats.Max(logM)
	if hi-lo < 1e-9 {
		hi = lo + 1
	}
	// The top divider is exclusive, so pad it past the largest value.
	hi += (hi - lo) * 1e-6
	dividers = floats.Span(make([]float64, massBins+1), lo, hi)
	counts = stat.Histogram(nil, dividers, logM, nil)
	return dividers, counts
}

// ClassFractions returns each spectral class's share of the luminous
// stars, in class order.
func (s Summary) ClassFractions() []float64 {
	var total int
	for _, c := range stellar.SpectralClasses {
		total += s.Classes[c]
	}
	out := make([]float64, len(stellar.SpectralClasses))
	if total == 0 {
		return out
	}
	for i, c := range stellar.SpectralClasses {
		out[i] = float64(s.Classes[c]) / float64(total)
	}
	return out
}
