package population

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/litescript/ls-stellar/internal/stellar"
)

// SnapshotExport is the JSON-serializable state of a population at one age.
type SnapshotExport struct {
	Age     float64      `json:"age_myr"`
	Stars   []StarExport `json:"stars"`
	Summary Summary      `json:"summary"`
}

// StarExport is a JSON-friendly star state.
type StarExport struct {
	Name          string  `json:"name"`
	Mass          float64 `json:"initial_mass"`
	Metallicity   float64 `json:"metallicity"`
	Phase         string  `json:"phase"`
	CurrentMass   float64 `json:"mass"`
	Luminosity    float64 `json:"luminosity"`
	Radius        float64 `json:"radius"`
	CoreMass      float64 `json:"core_mass"`
	Temperature   float64 `json:"temperature_k"`
	SpectralClass string  `json:"spectral_class,omitempty"`
}

// ExportSnapshot converts a population's ticks at age to an exportable form.
func ExportSnapshot(p *Population, age float64, ticks []stellar.Tick) *SnapshotExport {
	export := &SnapshotExport{
		Age:     age,
		Summary: Summarize(age, ticks),
	}
	for i, tk := range ticks {
		spec := p.Spec(i)
		se := StarExport{
			Name:        spec.Name,
			Mass:        spec.Mass,
			Metallicity: spec.Metallicity,
			Phase:       tk.Phase.Short(),
			CurrentMass: tk.Mass,
			Luminosity:  tk.Luminosity,
			Radius:      tk.Radius,
			CoreMass:    tk.CoreMass,
			Temperature: tk.Temperature(),
		}
		if !tk.Phase.IsRemnant() {
			se.SpectralClass = stellar.SpectralClass(se.Temperature)
		}
		export.Stars = append(export.Stars, se)
	}
	return export
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummaryTable writes a text summary of s to the given writer.
func WriteSummaryTable(w io.Writer, s Summary) {
	fmt.Fprintf(w, "Population @ %s (%d stars)\n", FormatAge(s.Age), s.Count)
	fmt.Fprintln(w, strings.Repeat("─", 60))

	if s.Count == 0 {
		fmt.Fprintln(w, "No stars")
		return
	}

	fmt.Fprintf(w, "%-8s %8s %8s\n", "Phase", "Count", "Share")
	for _, p := range stellar.Phases {
		n := s.Phases[p.Short()]
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "%-8s %8d %7.1f%%\n", p.Short(), n, 100*float64(n)/float64(s.Count))
	}

	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%-8s %8s %8s\n", "Class", "Count", "Share")
	for i, frac := range s.ClassFractions() {
		c := stellar.SpectralClasses[i]
		fmt.Fprintf(w, "%-8s %8d %7.1f%%\n", c, s.Classes[c], 100*frac)
	}

	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%-16s %10s %10s\n", "Quantity", "Mean", "StdDev")
	fmt.Fprintf(w, "%-16s %10.4g %10.4g\n", "mass [Msun]", s.Mass.Mean, s.Mass.StdDev)
	fmt.Fprintf(w, "%-16s %10.4g %10.4g\n", "log L [Lsun]", s.LogLum.Mean, s.LogLum.StdDev)
	fmt.Fprintf(w, "%-16s %10.4g %10.4g\n", "log R [Rsun]", s.LogRad.Mean, s.LogRad.StdDev)

	if len(s.MassCounts) > 0 {
		fmt.Fprintln(w, strings.Repeat("─", 60))
		peak := floats.Max(s.MassCounts)
		for i, n := range s.MassCounts {
			bar := 0
			if peak > 0 {
				bar = int(math.Round(30 * n / peak))
			}
			fmt.Fprintf(w, "%7.3g-%-7.3g %6.0f %s\n",
				math.Pow(10, s.MassDividers[i]), math.Pow(10, s.MassDividers[i+1]), n, strings.Repeat("█", bar))
		}
	}

	fmt.Fprintf(w, "\nRemnants: %d\n", s.Remnants)
}

// Track samples a star at its boundary ages plus a grid of evenly spaced
// ages running from zero to 10% past its terminal age.
func Track(s *stellar.Star, points int) []stellar.Tick {
	if points < 2 {
		points = 2
	}
	b := s.Boundaries()
	ages := floats.Span(make([]float64, points), 0, 1.1*b.TerminalAge)
	for _, a := range b.Ages() {
		ages = append(ages, a)
	}
	sort.Float64s(ages)

	ticks := make([]stellar.Tick, 0, len(ages))
	for i, a := range ages {
		if i > 0 && a == ages[i-1] {
			continue
		}
		ticks = append(ticks, s.Evaluate(a))
	}
	return ticks
}

// WriteTrack writes a star's boundaries and track as text tables.
func WriteTrack(w io.Writer, s *stellar.Star, ticks []stellar.Tick) {
	fmt.Fprintf(w, "Star M=%g Msun Z=%g (%s mass, ends as %s)\n",
		s.Mass(), s.Metallicity(), s.Regime(), s.Remnant())
	fmt.Fprintln(w, strings.Repeat("─", 78))

	b, c := s.Boundaries(), s.CoreMasses()
	rows := []struct {
		name string
		age  float64
		core float64
	}{
		{"main sequence end", b.MainSequenceEnd, c.MainSequenceEnd},
		{"base of giant branch", b.HertzsprungGapEnd, c.HertzsprungGapEnd},
		{"helium ignition", b.HeliumIgnition, c.HeliumIgnition},
		{"base of AGB", b.HeliumBurningEnd, c.HeliumBurningEnd},
		{"second dredge-up", b.EarlyAGBEnd, c.EarlyAGBEnd},
		{"terminal", b.TerminalAge, c.Terminal},
	}
	fmt.Fprintf(w, "%-22s %14s %10s\n", "Boundary", "Age", "Core")
	for _, r := range rows {
		fmt.Fprintf(w, "%-22s %14s %10.4f\n", r.name, FormatAge(r.age), r.core)
	}

	fmt.Fprintln(w, strings.Repeat("─", 78))
	fmt.Fprintf(w, "%14s %-6s %12s %12s %8s %8s %-2s\n",
		"Age", "Phase", "L [Lsun]", "R [Rsun]", "Mc", "Teff", "")
	for _, tk := range ticks {
		temp := tk.Temperature()
		class := ""
		if !tk.Phase.IsRemnant() {
			class = stellar.SpectralClass(temp)
		}
		fmt.Fprintf(w, "%14s %-6s %12.5g %12.5g %8.4f %8.0f %-2s\n",
			FormatAge(tk.Age), tk.Phase.Short(), tk.Luminosity, tk.Radius, tk.CoreMass, temp, class)
	}
}

// FormatAge formats an age in Myr with a readable unit.
func FormatAge(myr float64) string {
	switch {
	case myr >= 1000:
		return fmt.Sprintf("%.3f Gyr", myr/1000)
	case myr >= 1:
		return fmt.Sprintf("%.2f Myr", myr)
	default:
		return fmt.Sprintf("%.0f yr", myr*1e6)
	}
}
