package population

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-stellar/internal/stellar"
)

func buildTest(t *testing.T) *Population {
	t.Helper()
	p, err := Build(context.Background(), testSpecs(), 0, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return p
}

func TestSummarize(t *testing.T) {
	p := buildTest(t)
	ticks, err := p.EvaluateAll(context.Background(), 50)
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(50, ticks)

	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
	if s.Phases["MS"] != 2 || s.Phases["CMS"] != 1 || s.Phases["BH"] != 1 {
		t.Errorf("Phases = %v, want 2 MS, 1 CMS, 1 BH", s.Phases)
	}
	if s.Remnants != 1 {
		t.Errorf("Remnants = %d, want 1", s.Remnants)
	}
	if s.LogLum.N != 3 {
		t.Errorf("LogLum.N = %d, want 3 luminous stars", s.LogLum.N)
	}
	if s.Mass.N != 4 {
		t.Errorf("Mass.N = %d, want 4", s.Mass.N)
	}

	var classes int
	for _, n := range s.Classes {
		classes += n
	}
	if classes != 3 {
		t.Errorf("spectral classes cover %d stars, want 3", classes)
	}

	if len(s.MassDividers) != massBins+1 || len(s.MassCounts) != massBins {
		t.Fatalf("histogram sizes = %d/%d", len(s.MassDividers), len(s.MassCounts))
	}
	var binned float64
	for _, c := range s.MassCounts {
		binned += c
	}
	if binned != 4 {
		t.Errorf("histogram holds %v stars, want 4", binned)
	}

	var frac float64
	for _, f := range s.ClassFractions() {
		frac += f
	}
	if math.Abs(frac-1) > 1e-12 {
		t.Errorf("class fractions sum to %v, want 1", frac)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(0, nil)
	if s.Count != 0 || s.MassCounts != nil {
		t.Errorf("Summarize(nil) = %+v, want empty", s)
	}
	var buf bytes.Buffer
	WriteSummaryTable(&buf, s)
	if !strings.Contains(buf.String(), "No stars") {
		t.Errorf("table = %q, want No stars", buf.String())
	}
}

func TestSummarizeSingleStar(t *testing.T) {
	s := Summarize(0, []stellar.Tick{{Phase: stellar.MainSequence, Mass: 1, Luminosity: 1, Radius: 1}})
	if s.Mass.StdDev != 0 || s.Mass.Mean != 1 {
		t.Errorf("Mass = %+v, want mean 1 stddev 0", s.Mass)
	}
}

func TestExportSnapshotJSON(t *testing.T) {
	p := buildTest(t)
	ticks, _ := p.EvaluateAll(context.Background(), 50)
	export := ExportSnapshot(p, 50, ticks)

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, key := range []string{"age_myr", "stars", "summary"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}

	if export.Stars[0].Name != "sun" || export.Stars[0].SpectralClass != "G" {
		t.Errorf("first star = %+v, want the sun as class G", export.Stars[0])
	}
	if export.Stars[3].Phase != "BH" || export.Stars[3].SpectralClass != "" {
		t.Errorf("last star = %+v, want a black hole without class", export.Stars[3])
	}
}

func TestWriteSummaryTable(t *testing.T) {
	p := buildTest(t)
	ticks, _ := p.EvaluateAll(context.Background(), 50)

	var buf bytes.Buffer
	WriteSummaryTable(&buf, Summarize(50, ticks))
	out := buf.String()

	for _, want := range []string{"Population @ 50.00 Myr (4 stars)", "MS", "BH", "log L", "Remnants: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestTrack(t *testing.T) {
	s, err := stellar.New(1, 0.02)
	if err != nil {
		t.Fatal(err)
	}
	ticks := Track(s, 50)
	if len(ticks) < 50 {
		t.Fatalf("len = %d, want at least 50", len(ticks))
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Age <= ticks[i-1].Age {
			t.Fatalf("ages not increasing at %d: %v, %v", i, ticks[i-1].Age, ticks[i].Age)
		}
	}

	seen := make(map[stellar.Phase]bool)
	for _, tk := range ticks {
		seen[tk.Phase] = true
	}
	for _, p := range []stellar.Phase{stellar.MainSequence, stellar.HertzsprungGap, stellar.GiantBranch,
		stellar.CoreHeliumBurning, stellar.EarlyAGB, stellar.ThermallyPulsingAGB, stellar.CarbonOxygenWhiteDwarf} {
		if !seen[p] {
			t.Errorf("track never visits %v", p)
		}
	}

	var buf bytes.Buffer
	WriteTrack(&buf, s, ticks)
	out := buf.String()
	for _, want := range []string{"M=1 Msun", "helium ignition", "TPAGB", "COWD"} {
		if !strings.Contains(out, want) {
			t.Errorf("track table missing %q", want)
		}
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		myr  float64
		want string
	}{
		{4570, "4.570 Gyr"},
		{9.63, "9.63 Myr"},
		{0.5, "500000 yr"},
	}
	for _, tt := range tests {
		if got := FormatAge(tt.myr); got != tt.want {
			t.Errorf("FormatAge(%v) = %q, want %q", tt.myr, got, tt.want)
		}
	}
}
