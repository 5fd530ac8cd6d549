package stellar

import (
	"fmt"
	"sync"
)

// Stage identifies where in the model a diagnostic was raised.
type Stage string

const (
	StageCoefficients Stage = "coefficients"
	StageCritical     Stage = "critical"
	StageZAMS         Stage = "zams"
	StageBoundaries   Stage = "boundaries"
	StageMonotonic    Stage = "monotonic"
	StageCore         Stage = "core"
	StageEvaluate     Stage = "evaluate"
	StageRange        Stage = "range"
)

// Diagnostic describes a fit anomaly or invariant violation. Diagnostics
// never abort construction or evaluation.
type Diagnostic struct {
	Mass        float64
	Metallicity float64
	Stage       Stage
	Quantity    string
	Value       float64
	Detail      string
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("M=%.4g Z=%.4g %s/%s = %g", d.Mass, d.Metallicity, d.Stage, d.Quantity, d.Value)
	if d.Detail != "" {
		s += " (" + d.Detail + ")"
	}
	return s
}

// Reporter receives diagnostics. Implementations must be safe for
// concurrent use when stars are built in parallel.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

type discard struct{}

func (discard) Report(Diagnostic) {}

// Diagnostics is a Reporter that collects everything it receives.
type Diagnostics struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Report records d.
func (c *Diagnostics) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// All returns a copy of the collected diagnostics.
func (c *Diagnostics) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of collected diagnostics.
func (c *Diagnostics) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// checker accumulates finite checks for one star against its reporter.
type checker struct {
	s     *Star
	stage Stage
}

func (c checker) finite(name string, v float64) {
	if !isFinite(v) {
		c.s.report(c.stage, name, v, "non-finite")
	}
}
