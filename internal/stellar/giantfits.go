package stellar

import "math"

// fits evaluates the post-main-sequence fitting formulae as functions of an
// arbitrary mass. Several of them are needed at the helium-flash mass as
// well as at the star's own mass, to normalise the low-mass branches.
type fits struct {
	c  *Coefficients
	cm CriticalMasses
}

func (f fits) law(m float64) CoreLaw {
	return coreLawFor(m, f.cm, f.c.Zeta)
}

// ageBGB is the age at the base of the giant branch.
func (f fits) ageBGB(m float64) float64 {
	a := &f.c.A
	return rational(m,
		[]term{{a[1], 0}, {a[2], 4}, {a[3], 5.5}, {1, 7}},
		[]term{{a[4], 2}, {a[5], 7}})
}

// lumBGB is the luminosity at the base of the giant branch.
func (f fits) lumBGB(m float64) float64 {
	a := &f.c.A
	return rational(m,
		[]term{{a[27], a[31]}, {a[28], 9.301992}},
		[]term{{a[29], 0}, {a[30], 4.637345}, {1, a[32]}})
}

// lumHeI is the luminosity at helium ignition.
func (f fits) lumHeI(m float64) float64 {
	b := &f.c.B
	high := func(m float64) float64 {
		return rational(m, []term{{b[11], 0}, {b[12], 3.8}}, []term{{b[13], 0}, {1, 2}})
	}
	mf := f.cm.HeliumFlash
	if m < mf {
		alpha := (b[9]*math.Pow(mf, b[10]) - high(mf)) / high(mf)
		return b[9] * math.Pow(m, b[10]) / (1 + alpha*math.Exp(15*(m-mf)))
	}
	return high(m)
}

// lumMinHe is the minimum luminosity reached during core helium burning
// by intermediate-mass stars.
func (f fits) lumMinHe(m float64) float64 {
	b := &f.c.B
	mfgb := f.cm.FirstGiantBranch
	c := b[17]/math.Pow(mfgb, 0.1) + (b[16]*b[17]-b[14])/math.Pow(mfgb, b[15]+0.1)
	return f.lumHeI(m) * (b[14] + c*math.Pow(m, b[15]+0.1)) / (b[16] + math.Pow(m, b[15]))
}

// lumZHe is the zero-age luminosity of a naked helium star of mass m.
func (f fits) lumZHe(m float64) float64 {
	return 15262 * math.Pow(m, 10.25) /
		(math.Pow(m, 9) + 29.54*math.Pow(m, 7.5) + 31.18*math.Pow(m, 6) + 0.0469)
}

// radZHe is the zero-age radius of a naked helium star of mass m.
func (f fits) radZHe(m float64) float64 {
	return 0.2391 * math.Pow(m, 4.6) / (math.Pow(m, 4) + 0.162*math.Pow(m, 3) + 0.0065)
}

// ageHeMS is the main-sequence lifetime of a naked helium star of mass m.
func (f fits) ageHeMS(m float64) float64 {
	return (0.4129 + 18.81*math.Pow(m, 4) + 1.853*math.Pow(m, 6)) / math.Pow(m, 6.5)
}

func (f fits) flashFraction(m, mc float64) float64 {
	return (m - mc) / (f.cm.HeliumFlash - mc)
}

// lumZAHB is the zero-age horizontal-branch luminosity of a low-mass star
// with core mass mc.
func (f fits) lumZAHB(m, mc float64) float64 {
	b := &f.c.B
	mf := f.cm.HeliumFlash
	mu := f.flashFraction(m, mc)
	lz := f.lumZHe(mc)
	lmin := f.lumMinHe(mf)
	alpha := (b[18] + lz - lmin) / (lmin - lz)
	return lz + (1+b[20])/(1+b[20]*math.Pow(mu, 1.6479))*
		b[18]*math.Pow(mu, b[19])/(1+alpha*math.Exp(15*(m-mf)))
}

// radZAHB is the zero-age horizontal-branch radius.
func (f fits) radZAHB(m, mc float64) float64 {
	b := &f.c.B
	mu := f.flashFraction(m, mc)
	frac := (1 + b[21]) * math.Pow(mu, b[22]) / (1 + b[21]*math.Pow(mu, b[23]))
	return (1-frac)*f.radZHe(mc) + frac*f.radGB(m, f.lumZAHB(m, mc))
}

// radGB is the giant-branch radius at luminosity l.
func (f fits) radGB(m, l float64) float64 {
	b := &f.c.B
	scale := math.Min(b[4]*math.Pow(m, -b[5]), b[6]*math.Pow(m, -b[7]))
	return scale * (math.Pow(l, b[1]) + b[2]*math.Pow(l, b[3]))
}

// radAGB is the asymptotic-giant-branch radius at luminosity l. Masses
// between M_HeF - 0.2 and M_HeF blend the low- and high-mass forms.
func (f fits) radAGB(m, l float64) float64 {
	b := &f.c.B
	m1, m2 := f.cm.HeliumFlash-0.2, f.cm.HeliumFlash
	ml, mh := math.Min(m, m1), math.Max(m, m2)
	low := (b[56] + b[57]*ml) * (math.Pow(l, b[1]) + b[2]*math.Pow(l, b[55]*b[3]))
	high := math.Min(b[51]*math.Pow(mh, -b[52]), b[53]*math.Pow(mh, -b[54])) *
		(math.Pow(l, b[1]) + b[2]*math.Pow(l, b[3]))
	return lerp(m, m1, m2, low, high)
}

// radMinHe is the minimum radius during the blue loop.
func (f fits) radMinHe(m, mc float64) float64 {
	b := &f.c.B
	high := func(m float64) float64 {
		return rational(m,
			[]term{{b[24], 1}, {math.Pow(b[25], b[26]), b[26] + b[28]}},
			[]term{{b[27], 0}, {1, b[28]}})
	}
	mf := f.cm.HeliumFlash
	if m >= mf {
		return high(m)
	}
	ratio := high(mf) / f.radGB(mf, f.lumZAHB(mf, mc))
	return f.radGB(m, f.lumZAHB(m, mc)) * math.Pow(ratio, m/mf)
}

// lumBAGB is the luminosity at the base of the asymptotic giant branch.
func (f fits) lumBAGB(m float64) float64 {
	b := &f.c.B
	high := func(m float64) float64 {
		return rational(m, []term{{b[31], 0}, {b[32], b[33] + 1.8}}, []term{{b[34], 0}, {1, b[33]}})
	}
	mf := f.cm.HeliumFlash
	if m >= mf {
		return high(m)
	}
	alpha := (b[29]*math.Pow(mf, b[30]) - high(mf)) / high(mf)
	return b[29] * math.Pow(m, b[30]) / (1 + alpha*math.Exp(15*(m-mf)))
}

// durationHe is the core-helium-burning lifetime of a star whose core
// mass at helium ignition is mc.
func (f fits) durationHe(m, mc float64) float64 {
	b := &f.c.B
	high := func(m float64) float64 {
		return f.ageBGB(m) * rational(m, []term{{b[41], b[42]}, {b[43], 5}}, []term{{b[44], 0}, {1, 5}})
	}
	mf := f.cm.HeliumFlash
	if m >= mf {
		return high(m)
	}
	mu := f.flashFraction(m, mc)
	alpha := (high(mf) - b[39]) / b[39]
	return (b[39] + (f.ageHeMS(mc)-b[39])*math.Pow(1-mu, b[40])) * (1 + alpha*math.Exp(15*(m-mf)))
}

// coreMassBAGB is the core mass at the base of the asymptotic giant branch.
func (f fits) coreMassBAGB(m float64) float64 {
	b := &f.c.B
	return math.Pow(b[36]*math.Pow(m, b[37])+b[38], 0.25)
}

const (
	coreC1 = 9.20925e-5
	coreC2 = 5.402216
)

// coreMassFit continues a core mass known at the helium-flash mass to
// higher masses: Mc = (C + c1·M^c2)^(1/4) with C fixed by mcAtFlash.
func (f fits) coreMassFit(m, mcAtFlash float64) float64 {
	mf := f.cm.HeliumFlash
	c := math.Pow(mcAtFlash, 4) - coreC1*math.Pow(mf, coreC2)
	return math.Pow(c+coreC1*math.Pow(m, coreC2), 0.25)
}

// coreMassBGB is the core mass at the base of the giant branch for stars
// that do not have degenerate cores.
func (f fits) coreMassBGB(m float64) float64 {
	mf := f.cm.HeliumFlash
	atFlash := f.law(mf).CoreMass(f.lumBGB(mf))
	return math.Min(0.95*f.coreMassBAGB(m), f.coreMassFit(m, atFlash))
}

// coreMassHeI is the core mass at helium ignition.
func (f fits) coreMassHeI(m float64) float64 {
	mf := f.cm.HeliumFlash
	if m < mf {
		return f.law(m).CoreMass(f.lumHeI(m))
	}
	return f.coreMassFit(m, f.law(mf).CoreMass(f.lumHeI(mf)))
}
