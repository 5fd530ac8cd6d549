package stellar

import (
	"math"
	"strconv"
)

// SolarMetallicity is the reference metallicity the fits are normalised to.
const SolarMetallicity = 0.02

// Coefficients holds every metallicity-dependent constant of the model.
// A and B are indexed by their published number; index 0 is unused.
type Coefficients struct {
	Zeta  float64 // log10(Z/0.02)
	Sigma float64 // log10(Z)
	Rho   float64 // ζ + 1

	ZAMS [16]float64 // zero-age main-sequence fit constants
	A    [82]float64
	B    [58]float64

	a68Raw float64 // a68 before it is capped at a66
}

// ComputeCoefficients evaluates the coefficient tables at metallicity z and
// applies the published algebraic derivations and regime limits.
func ComputeCoefficients(z float64) Coefficients {
	var c Coefficients
	zeta := math.Log10(z / SolarMetallicity)
	sigma := math.Log10(z)
	c.Zeta, c.Sigma, c.Rho = zeta, sigma, zeta+1

	for i, row := range zamsTable {
		c.ZAMS[i] = poly(zeta, row)
	}
	for i, row := range aTable {
		if row != nil {
			c.A[i] = poly(zeta, row)
		}
	}
	for i, row := range bTable {
		if row != nil {
			c.B[i] = poly(zeta, row)
		}
	}

	c.deriveA(z)
	c.deriveB(z)

	// b46 carries the blue-loop normalisation, which needs the critical masses.
	cm := NewCriticalMasses(z)
	c.B[46] = -c.B[46] * math.Log10(cm.HeliumFlash/cm.FirstGiantBranch)
	return c
}

func (c *Coefficients) deriveA(z float64) {
	a := &c.A
	zeta, sigma := c.Zeta, c.Sigma

	a[11] *= a[14]
	a[12] *= a[14]
	a[17] = pow10(math.Max(0.097-0.1072*(sigma+3), math.Max(0.097, math.Min(0.1461, 0.1461+0.1237*(sigma+2)))))
	a[18] *= a[20]
	a[19] *= a[20]
	a[29] = math.Pow(a[29], a[32])
	a[33] = math.Max(0.6355-0.4192*zeta, math.Max(1.25, math.Min(1.4, 1.5135+0.3769*zeta)))
	a[42] = clamp(a[42], 1.1, 1.25)
	a[44] = clamp(a[44], 0.45, 1.3)
	a[49] = math.Max(a[49], 0.145)
	a[50] = math.Min(a[50], 0.306+0.053*zeta)
	a[51] = math.Min(a[51], 0.3625+0.062*zeta)
	a[52] = math.Max(a[52], 0.9)
	a[53] = math.Max(a[53], 1.0)
	if z > 0.01 {
		a[52] = math.Min(a[52], 1.0)
		a[53] = math.Min(a[53], 1.1)
	}
	a[57] = math.Max(0.6355-0.4192*zeta, math.Max(1.25, math.Min(1.4, a[57])))
	a[62] = math.Max(0.065, a[62])
	if z < 0.004 {
		a[63] = math.Min(0.055, a[63])
	}
	a[64] = clamp(a[64], 0.091, 0.121)
	a[66] = math.Max(a[66], math.Min(1.6, -0.308-1.046*zeta))
	a[66] = math.Max(0.8, math.Min(0.8-2.0*zeta, a[66]))
	a[68] = clamp(a[68], 0.9, 1.0)
	c.a68Raw = a[68]
	a[68] = math.Min(a[68], a[66])
	if z > 0.01 {
		a[72] = math.Max(a[72], 0.95)
	}
	a[74] = clamp(a[74], 1.4, 1.6)
	a[75] = clamp(a[75], 1.0, 1.27)
	a[75] = math.Max(a[75], 0.6355-0.4192*zeta)
	a[76] = math.Max(a[76], -0.1015564-0.2161264*zeta-0.05182516*zeta*zeta)
	a[77] = math.Max(-0.3868776-0.5457078*zeta-0.146347*zeta*zeta, math.Min(0.0, a[77]))
	a[78] = math.Max(0.0, math.Min(a[78], 7.454+9.046*zeta))
	a[79] = math.Min(a[79], math.Max(2.0, -13.3-18.6*zeta))
	a[80] = math.Max(0.0585542, a[80])
	a[81] = clamp(a[81], 0.4, 1.5)
}

func (c *Coefficients) deriveB(z float64) {
	b := &c.B
	zeta, sigma, rho := c.Zeta, c.Sigma, c.Rho
	zeta5 := math.Pow(zeta, 5)

	b[1] = math.Min(0.54, b[1])
	b[2] = math.Min(math.Max(pow10(-4.6739-0.9394*sigma), -0.04167+55.67*z), 0.4771-9329.21*math.Pow(z, 2.94))
	b[3] = pow10(math.Max(-0.1451, -2.2794-1.5175*sigma-0.254*sigma*sigma))
	if z > 0.004 {
		b[3] = math.Max(b[3], 0.7307+14265.1*math.Pow(z, 3.395))
	}
	b[4] += 0.1231572 * zeta5
	b[6] += 0.01640687 * zeta5
	b[11] *= b[11]
	b[13] *= b[13]
	b[14] = math.Pow(b[14], b[15])
	b[16] = math.Pow(b[16], b[15])
	b[17] = 1.0
	if zeta > -1.0 {
		b[17] = 1.0 - 0.3880523*math.Pow(zeta+1.0, 2.862149)
	}
	b[24] = math.Pow(b[24], b[28])
	b[26] = 5.0 - 0.09138012*math.Pow(z, -0.3671407)
	b[27] = math.Pow(b[27], 2*b[28])
	b[31] = math.Pow(b[31], b[33])
	b[34] = math.Pow(b[34], b[33])
	b[36] = math.Pow(b[36], 4)
	b[37] *= 4.0
	b[38] = math.Pow(b[38], 4)
	b[40] = math.Max(b[40], 1.0)
	b[41] = math.Pow(b[41], b[42])
	b[44] = math.Pow(b[44], 5)
	b[45] = 1.0
	if rho > 0.0 {
		b[45] = 1.0 - (2.47162*rho - 5.401682*rho*rho + 3.247361*rho*rho*rho)
	}
	b[47] = 1.127733*rho + 0.2344416*rho*rho - 0.3793726*rho*rho*rho
	b[51] -= 0.134379 * zeta5
	b[53] -= 0.4426929 * zeta5
	b[55] = math.Min(b[55], 0.99164-743.123*math.Pow(z, 2.83))
	b[56] += 0.1140142 * zeta5
	b[57] -= 0.01308728 * zeta5
}

// finite reports the first non-finite coefficient, if any.
func (c *Coefficients) finite() (string, float64, bool) {
	for i, v := range c.ZAMS {
		if !isFinite(v) {
			return zamsNames[i], v, false
		}
	}
	for i, v := range c.A {
		if !isFinite(v) {
			return "a" + strconv.Itoa(i), v, false
		}
	}
	for i, v := range c.B {
		if !isFinite(v) {
			return "b" + strconv.Itoa(i), v, false
		}
	}
	return "", 0, true
}

var zamsNames = [16]string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta",
	"theta", "iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi",
}
