// Package population builds and evaluates ensembles of stars: sampled from
// an initial mass function or read from a catalog, constructed and
// advanced in parallel, and summarised for display and export.
package population

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-stellar/internal/stellar"
)

// Spec is the input for one star.
type Spec struct {
	Name        string  `toml:"name" json:"name"`
	Mass        float64 `toml:"mass" json:"mass"`
	Metallicity float64 `toml:"metallicity" json:"metallicity"`
}

// Population is an ordered set of stars. Each star is touched by at most
// one goroutine during EvaluateAll.
type Population struct {
	specs   []Spec
	stars   []*stellar.Star
	workers int
}

// Build constructs a star for every spec using up to workers goroutines
// (GOMAXPROCS when workers <= 0). Diagnostics go to reporter, which may
// be nil. The first invalid spec aborts the build.
func Build(ctx context.Context, specs []Spec, workers int, reporter stellar.Reporter) (*Population, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Population{
		specs:   append([]Spec(nil), specs...),
		stars:   make([]*stellar.Star, len(specs)),
		workers: workers,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, spec := range p.specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := stellar.New(spec.Mass, spec.Metallicity, stellar.WithReporter(reporter))
			if err != nil {
				return fmt.Errorf("star %q: %w", spec.Name, err)
			}
			p.stars[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return p, nil
}

// EvaluateAll advances every star to age and returns the ticks in
// population order.
func (p *Population) EvaluateAll(ctx context.Context, age float64) ([]stellar.Tick, error) {
	ticks := make([]stellar.Tick, len(p.stars))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, s := range p.stars {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ticks[i] = s.Advance(age)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ticks, nil
}

// Len returns the number of stars.
func (p *Population) Len() int { return len(p.stars) }

// Star returns the i'th star.
func (p *Population) Star(i int) *stellar.Star { return p.stars[i] }

// Spec returns the i'th input spec.
func (p *Population) Spec(i int) Spec { return p.specs[i] }

// Specs returns a copy of the input specs.
func (p *Population) Specs() []Spec {
	return append([]Spec(nil), p.specs...)
}

// MaxTerminalAge returns the latest terminal age of any star.
func (p *Population) MaxTerminalAge() float64 {
	var maxAge float64
	for _, s := range p.stars {
		maxAge = max(maxAge, s.Boundaries().TerminalAge)
	}
	return maxAge
}
