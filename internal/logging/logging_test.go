package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/litescript/ls-stellar/internal/stellar"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered lines: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Errorf("output = %q, want WARN and ERROR lines", out)
	}
}

func TestNamedSharesSink(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelInfo)
	root.SetOutput(&buf)
	pop := root.Named("population")
	sub := pop.Named("sampler")

	pop.Info("built %d stars", 3)
	root.SetLevel(LevelError)
	sub.Info("dropped")
	sub.Error("failed")

	out := buf.String()
	if !strings.Contains(out, "[INFO] population: built 3 stars") {
		t.Errorf("output = %q, want component prefix", out)
	}
	if strings.Contains(out, "dropped") {
		t.Errorf("named logger ignored parent level: %q", out)
	}
	if !strings.Contains(out, "population.sampler: failed") {
		t.Errorf("output = %q, want nested component", out)
	}
}

func TestReportDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo)
	l.SetOutput(&buf)

	if _, err := stellar.New(150, 0.02, stellar.WithReporter(l.Named("engine").Reporter())); err != nil {
		t.Fatalf("stellar.New() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[WARN] engine:") || !strings.Contains(out, "range/mass") {
		t.Errorf("output = %q, want a range warning", out)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	if l.Enabled(LevelError) {
		t.Error("Discard().Enabled(LevelError) = true, want false")
	}
}
