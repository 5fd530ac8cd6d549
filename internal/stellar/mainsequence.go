package stellar

import "math"

// ZAMS holds the zero-age main-sequence luminosity and radius.
type ZAMS struct {
	Luminosity float64
	Radius     float64
}

// NewZAMS evaluates the zero-age fits for mass m.
func NewZAMS(m float64, c *Coefficients) ZAMS {
	t := &c.ZAMS
	return ZAMS{
		Luminosity: rational(m,
			[]term{{t[0], 5.5}, {t[1], 11}},
			[]term{{t[2], 0}, {1, 3}, {t[3], 5}, {t[4], 7}, {t[5], 8}, {t[6], 9.5}}),
		Radius: rational(m,
			[]term{{t[7], 2.5}, {t[8], 6.5}, {t[9], 11}, {t[10], 19}, {t[11], 19.5}},
			[]term{{t[12], 0}, {t[13], 2}, {t[14], 8.5}, {1, 18.5}, {t[15], 19.5}}),
	}
}

// mainSequence holds the per-star constants of the main-sequence tracks.
type mainSequence struct {
	zams ZAMS

	hookAge float64
	endAge  float64

	lumEnd float64 // L_TMS
	radEnd float64 // R_TMS

	lumAlpha, lumBeta, lumDelta, eta float64
	radAlpha, radBeta, radGamma, radDelta float64

	radMin float64
}

// hookEps is the fraction of the hook age over which the hook fades out.
const hookEps = 0.01

func newMainSequence(m, z, x float64, f fits, zams ZAMS) mainSequence {
	a := &f.c.A
	mhook := f.cm.Hook
	ms := mainSequence{zams: zams}

	tbgb := f.ageBGB(m)
	mu := math.Max(0.5, 1-0.01*math.Max(a[6]/math.Pow(m, a[7]), a[8]+a[9]/math.Pow(m, a[10])))
	ms.hookAge = mu * tbgb
	xf := clamp(0.95-0.03*(f.c.Zeta+0.30103), 0.95, 0.99)
	ms.endAge = math.Max(ms.hookAge, xf*tbgb)

	ms.lumEnd = rational(m,
		[]term{{a[11], 3}, {a[12], 4}, {a[13], a[16] + 1.8}},
		[]term{{a[14], 0}, {a[15], 5}, {1, a[16]}})

	const c1 = -8.672073e-2
	mstar := a[17] + 0.1
	low := rational(math.Min(m, a[17]), []term{{a[18], 0}, {a[19], a[21]}}, []term{{a[20], 0}, {1, a[22]}})
	high := rational(math.Max(m, mstar),
		[]term{{c1, 3}, {a[23], a[26]}, {a[24], a[26] + 1.5}},
		[]term{{a[25], 0}, {1, 5}})
	ms.radEnd = lerp(m, a[17], mstar, low, high)
	if m <= 0.5 {
		ms.radEnd = math.Max(ms.radEnd, 1.5*zams.Radius)
	}

	switch {
	case z > 0.0009 || m <= 1.0:
		ms.eta = 10
	case m >= 1.1:
		ms.eta = 20
	default:
		ms.eta = 10 + 100*(m-1.0)
	}

	// Luminosity perturbation of the hook.
	lumDelta := func(m float64) float64 {
		return math.Min(a[34]/math.Pow(m, a[35]), a[36]/math.Pow(m, a[37]))
	}
	switch {
	case m <= mhook:
	case m < a[33]:
		ms.lumDelta = lumDelta(a[33]) * math.Pow((m-mhook)/(a[33]-mhook), 0.4)
	default:
		ms.lumDelta = lumDelta(m)
	}

	// Radius perturbation of the hook.
	radDelta := func(m float64) float64 {
		return rational(m, []term{{a[38], 0}, {a[39], 3.5}}, []term{{a[40], 3}, {1, a[41]}}) - 1
	}
	switch {
	case m <= mhook:
	case m <= a[42]:
		ms.radDelta = a[43] * math.Sqrt((m-mhook)/(a[42]-mhook))
	case m < 2.0:
		ms.radDelta = a[43] + (radDelta(2.0)-a[43])*math.Pow((m-a[42])/(2.0-a[42]), a[44])
	default:
		ms.radDelta = radDelta(m)
	}

	lumAlpha := func(m float64) float64 {
		return rational(m, []term{{a[45], 0}, {a[46], a[48]}}, []term{{1, 0.4}, {a[47], 1.9}})
	}
	switch {
	case m < 0.5:
		ms.lumAlpha = a[49]
	case m < 0.7:
		ms.lumAlpha = a[49] + 5.0*(0.3-a[49])*(m-0.5)
	case m < a[52]:
		ms.lumAlpha = 0.3 + (a[50]-0.3)*(m-0.7)/(a[52]-0.7)
	case m < a[53]:
		ms.lumAlpha = a[50] + (a[51]-a[50])*(m-a[52])/(a[53]-a[52])
	case m < 2.0:
		ms.lumAlpha = a[51] + (lumAlpha(2.0)-a[51])*(m-a[53])/(2.0-a[53])
	default:
		ms.lumAlpha = lumAlpha(m)
	}

	lumBeta := func(m float64) float64 {
		return math.Max(0, a[54]-a[55]*math.Pow(m, a[56]))
	}
	ms.lumBeta = lumBeta(m)
	if m > a[57] && ms.lumBeta > 0 {
		b := lumBeta(a[57])
		ms.lumBeta = math.Max(0, b-10*(m-a[57])*b)
	}

	radAlpha := func(m float64) float64 {
		return a[58] * math.Pow(m, a[60]) / (a[59] + math.Pow(m, a[61]))
	}
	a64 := a[64]
	if f.c.a68Raw > a[66] {
		a64 = radAlpha(a[66])
	}
	switch {
	case m >= a[66] && m <= a[67]:
		ms.radAlpha = radAlpha(m)
	case m < 0.5:
		ms.radAlpha = a[62]
	case m < 0.65:
		ms.radAlpha = a[62] + (a[63]-a[62])*(m-0.5)/0.15
	case m < a[68]:
		ms.radAlpha = a[63] + (a64-a[63])*(m-0.65)/(a[68]-0.65)
	case m < a[66]:
		ms.radAlpha = a64 + (radAlpha(a[66])-a64)*(m-a[68])/(a[66]-a[68])
	default:
		ms.radAlpha = radAlpha(a[67]) + a[65]*(m-a[67])
	}

	radBeta := func(m float64) float64 {
		return a[69] * math.Pow(m, 3.5) / (a[70] + math.Pow(m, a[71]))
	}
	var beta float64
	switch {
	case m <= 1.0:
		beta = 1.06
	case m < a[74]:
		beta = 1.06 + (a[72]-1.06)*(m-1.0)/(a[74]-1.0)
	case m < 2.0:
		beta = a[72] + (radBeta(2.0)-a[72])*(m-a[74])/(2.0-a[74])
	case m <= 16.0:
		beta = radBeta(m)
	default:
		beta = radBeta(16.0) + a[73]*(m-16.0)
	}
	ms.radBeta = beta - 1

	radGamma := func(m float64) float64 {
		return a[76] + a[77]*math.Pow(math.Max(m-a[78], 0), a[79])
	}
	switch {
	case m > a[75]+0.1:
	case m <= 1.0:
		ms.radGamma = radGamma(m)
	case m <= a[75]:
		ms.radGamma = radGamma(1.0) + (a[80]-radGamma(1.0))*math.Pow((m-1.0)/(a[75]-1.0), a[81])
	default:
		c := a[80]
		if a[75] <= 1.0 {
			c = radGamma(1.0)
		}
		ms.radGamma = c - 10*(m-a[75])*c
	}

	ms.radMin = 0.0258 * math.Pow(1+x, 5.0/3.0) * math.Pow(m, -1.0/3.0)
	return ms
}

// evaluate returns luminosity and radius at age t on the main sequence.
func (ms mainSequence) evaluate(t float64) (lum, rad float64) {
	tau := t / ms.endAge
	tau1 := math.Min(1, t/ms.hookAge)
	tau2 := clamp((t-(1-hookEps)*ms.hookAge)/(hookEps*ms.hookAge), 0, 1)
	hookL := tau1*tau1 - tau2*tau2
	hookR := tau1*tau1*tau1 - tau2*tau2*tau2

	z := ms.zams
	logL := ms.lumAlpha*tau + ms.lumBeta*math.Pow(tau, ms.eta) +
		(math.Log10(ms.lumEnd/z.Luminosity)-ms.lumAlpha-ms.lumBeta)*tau*tau -
		ms.lumDelta*hookL
	logR := ms.radAlpha*tau + ms.radBeta*math.Pow(tau, 10) + ms.radGamma*math.Pow(tau, 40) +
		(math.Log10(ms.radEnd/z.Radius)-ms.radAlpha-ms.radBeta-ms.radGamma)*tau*tau*tau -
		ms.radDelta*hookR

	lum = z.Luminosity * pow10(logL)
	rad = math.Max(z.Radius*pow10(logR), ms.radMin)
	return lum, rad
}
