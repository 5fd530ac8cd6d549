package stellar

import "math"

// term is one c·x^e summand of an empirical fit.
type term struct {
	c, e float64
}

// terms sums c·x^e over ts. Negative bases with fractional exponents yield
// NaN, which the finite checks pick up rather than hide.
func terms(x float64, ts ...term) float64 {
	var s float64
	for _, t := range ts {
		s += t.c * math.Pow(x, t.e)
	}
	return s
}

// rational evaluates a ratio of two term sums, the shape of nearly every
// fit in the model.
func rational(x float64, num, den []term) float64 {
	return terms(x, num...) / terms(x, den...)
}

// poly evaluates c0 + c1·x + c2·x² + ... by Horner's rule.
func poly(x float64, cs []float64) float64 {
	var s float64
	for i := len(cs) - 1; i >= 0; i-- {
		s = s*x + cs[i]
	}
	return s
}

// lerp blends v0 and v1 linearly in x over [x0, x1], holding the end
// values outside the interval.
func lerp(x, x0, x1, v0, v1 float64) float64 {
	switch {
	case x < x0:
		return v0
	case x > x1:
		return v1
	}
	f := (x - x0) / (x1 - x0)
	return v0*(1-f) + v1*f
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

func pow10(x float64) float64 {
	return math.Pow(10, x)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
