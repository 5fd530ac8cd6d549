package population

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-stellar/internal/stellar"
)

func TestKroupaIMF(t *testing.T) {
	tests := []struct {
		name string
		m    float64
		want float64
	}{
		{"non-positive", 0, 0},
		{"brown dwarf segment", 0.05, math.Pow(0.05, -0.3)},
		{"middle segment", 0.2, 0.08 * math.Pow(0.2, -1.3)},
		{"upper segment", 2, 0.04 * math.Pow(2, -2.3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KroupaIMF(tt.m); math.Abs(got-tt.want) > 1e-12*math.Max(1, tt.want) {
				t.Errorf("KroupaIMF(%v) = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestKroupaIMFContinuous(t *testing.T) {
	for _, b := range []float64{kroupaBreakLow, kroupaBreakHigh} {
		below := KroupaIMF(math.Nextafter(b, 0))
		at := KroupaIMF(b)
		if math.Abs(below-at) > 1e-9*at {
			t.Errorf("IMF jumps at %v: %v -> %v", b, below, at)
		}
	}
}

func TestSamplerDeterministic(t *testing.T) {
	s := Sampler{MinMass: 0.1, MaxMass: 20, MinMetallicity: 0.001, MaxMetallicity: 0.03, Seed: 42}
	a, err := s.Sample(50)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	b, _ := s.Sample(50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}

	s.Seed = 43
	c, _ := s.Sample(50)
	same := 0
	for i := range a {
		if a[i] == c[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("different seeds produced identical samples")
	}
}

func TestSamplerRanges(t *testing.T) {
	s := Sampler{MinMass: 0.5, MaxMass: 8, MinMetallicity: 0.004, MaxMetallicity: 0.02, Seed: 7}
	specs, err := s.Sample(500)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(specs) != 500 {
		t.Fatalf("len = %d, want 500", len(specs))
	}
	for _, sp := range specs {
		if sp.Mass < s.MinMass || sp.Mass > s.MaxMass {
			t.Errorf("%s mass %v outside [%v, %v]", sp.Name, sp.Mass, s.MinMass, s.MaxMass)
		}
		if sp.Metallicity < s.MinMetallicity || sp.Metallicity > s.MaxMetallicity {
			t.Errorf("%s metallicity %v outside range", sp.Name, sp.Metallicity)
		}
	}
	if specs[0].Name != "star-0001" {
		t.Errorf("first name = %q, want star-0001", specs[0].Name)
	}
}

func TestSamplerFollowsIMF(t *testing.T) {
	// Over [0.1, 20] Msun the Kroupa IMF puts 73.1% of stars below 0.5 Msun.
	s := Sampler{MinMass: 0.1, MaxMass: 20, MinMetallicity: 0.02, MaxMetallicity: 0.02, Seed: 1}
	specs, err := s.Sample(20000)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	below := 0
	for _, sp := range specs {
		if sp.Mass < 0.5 {
			below++
		}
		if sp.Metallicity != 0.02 {
			t.Fatalf("metallicity = %v, want fixed 0.02", sp.Metallicity)
		}
	}
	frac := float64(below) / float64(len(specs))
	if math.Abs(frac-0.7306) > 0.02 {
		t.Errorf("fraction below 0.5 Msun = %.4f, want 0.7306", frac)
	}
}

func TestSamplerValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Sampler
	}{
		{"zero mass", Sampler{MinMass: 0, MaxMass: 1, MinMetallicity: 0.02, MaxMetallicity: 0.02}},
		{"inverted mass", Sampler{MinMass: 2, MaxMass: 1, MinMetallicity: 0.02, MaxMetallicity: 0.02}},
		{"inverted metallicity", Sampler{MinMass: 1, MaxMass: 2, MinMetallicity: 0.03, MaxMetallicity: 0.02}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.s.Sample(1); err == nil {
				t.Error("Sample() error = nil, want error")
			}
		})
	}
}

func testSpecs() []Spec {
	return []Spec{
		{Name: "sun", Mass: 1, Metallicity: 0.02},
		{Name: "dwarf", Mass: 0.5, Metallicity: 0.02},
		{Name: "b-star", Mass: 5, Metallicity: 0.02},
		{Name: "o-star", Mass: 20, Metallicity: 0.02},
	}
}

func TestBuildAndEvaluate(t *testing.T) {
	ctx := context.Background()
	var diags stellar.Diagnostics
	p, err := Build(ctx, testSpecs(), 2, &diags)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	if diags.Len() != 0 {
		t.Errorf("diagnostics = %v, want none", diags.All())
	}

	ticks, err := p.EvaluateAll(ctx, 50)
	if err != nil {
		t.Fatalf("EvaluateAll() error = %v", err)
	}
	want := []stellar.Phase{
		stellar.MainSequence,
		stellar.DeeplyConvectiveMainSequence,
		stellar.MainSequence,
		stellar.BlackHole,
	}
	for i, tk := range ticks {
		if tk.Phase != want[i] {
			t.Errorf("%s phase = %v, want %v", p.Spec(i).Name, tk.Phase, want[i])
		}
		if p.Star(i).Current() != tk {
			t.Errorf("%s current tick not advanced", p.Spec(i).Name)
		}
	}

	if got := p.MaxTerminalAge(); got < p.Star(1).Boundaries().TerminalAge {
		t.Errorf("MaxTerminalAge() = %v, want the dwarf's terminal age", got)
	}
}

func TestBuildRejectsInvalidSpec(t *testing.T) {
	specs := append(testSpecs(), Spec{Name: "bad", Mass: -1, Metallicity: 0.02})
	_, err := Build(context.Background(), specs, 0, nil)
	if !errors.Is(err, stellar.ErrInvalidMass) {
		t.Errorf("Build() error = %v, want %v", err, stellar.ErrInvalidMass)
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, testSpecs(), 1, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want %v", err, context.Canceled)
	}
}
