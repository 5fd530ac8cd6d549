package stellar

// Polynomial coefficient tables in ζ = log10(Z/0.02), lowest order first.
//
// zamsTable holds the Tout et al. (1996) zero-age fits, ordered
// α, β, γ, δ, ε, ζ, η (luminosity) then θ, ι, κ, λ, μ, ν, ξ, ο, π (radius).
// aTable and bTable hold the Hurley, Pols & Tout (2000) a- and b-coefficients
// indexed by their published number. Entries left nil are derived purely
// algebraically in computeCoefficients.
var zamsTable = [16][]float64{
	{0.3970417, -0.32913574, 0.34776688, 0.37470851, 0.09011915},
	{8.527626, -24.41225973, 56.43597107, 37.06152575, 5.4562406},
	{0.00025546, -0.00123461, -0.00023246, 0.00045519, 0.00016176},
	{5.432889, -8.62157806, 13.44202049, 14.51584135, 3.39793084},
	{5.563579, -10.32345224, 19.4432298, 18.97361347, 4.16903097},
	{0.7886606, -2.90870942, 6.54713531, 4.05606657, 0.53287322},
	{0.00586685, -0.01704237, 0.03872348, 0.02570041, 0.00383376},
	{1.715359, 0.62246212, -0.92557761, -1.16996966, -0.30631491},
	{6.597788, -0.42450044, -12.13339427, -10.73509484, -2.51487077},
	{10.08855, -7.11727086, -31.67119479, -24.24848322, -5.33608972},
	{1.012495, 0.3269969, -0.00923418, -0.03876858, -0.0041275},
	{0.07490166, 0.02410413, 0.07233664, 0.03040467, 0.00197741},
	{0.01077422},
	{3.082234, 0.9447205, -2.15200882, -2.49219496, -0.63848738},
	{17.84778, -7.4534569, -48.96066856, -40.05386135, -9.09331816},
	{0.00022582, -0.00186899, 0.00388783, 0.00142402, -0.00007671},
}

var aTable = [82][]float64{
	1:  {1.593890e+3, 2.053038e+3, 1.231226e+3, 2.327785e+2},
	2:  {2.706708e+3, 1.483131e+3, 5.772723e+2, 7.411230e+1},
	3:  {1.466143e+2, -1.048442e+2, -6.795374e+1, -1.391127e+1},
	4:  {4.141960e-2, 4.564888e-2, 2.958542e-2, 5.571483e-3},
	5:  {3.426349e-1},
	6:  {1.949814e+1, 1.758178e+0, -6.008212e+0, -4.470533e+0},
	7:  {4.903830e+0},
	8:  {5.212154e-2, 3.166411e-2, -2.750074e-3, -2.271549e-3},
	9:  {1.312179e+0, -3.294936e-1, 9.231860e-2, 2.610989e-2},
	10: {8.073972e-1},
	11: {1.031538e+0, -2.434480e-1, 7.732821e+0, 6.460705e+0, 1.374484e+0},
	12: {1.043715e+0, -1.577474e+0, -5.168234e+0, -5.596506e+0, -1.299394e+0},
	13: {7.859573e+2, -8.542048e+0, -2.642511e+1, -9.585707e+0},
	14: {3.858911e+3, 2.459681e+3, -7.630093e+1, -3.486057e+2, -4.861703e+1},
	15: {2.888720e+2, 2.952979e+2, 1.850341e+2, 3.797254e+1},
	16: {7.196580e+0, 5.613746e-1, 3.805871e-1, 8.398728e-2},
	18: {2.187715e-1, -2.154437e+0, -3.768678e+0, -1.975518e+0, -3.021475e-1},
	19: {1.466440e+0, 1.839725e+0, 6.442199e+0, 4.023635e+0, 6.957529e-1},
	20: {2.652091e+1, 8.178458e+1, 1.156058e+2, 7.633811e+1, 1.950698e+1},
	21: {1.472103e+0, -2.947609e+0, -3.312828e+0, -9.945065e-1},
	22: {3.071048e+0, -5.679941e+0, -9.745523e+0, -3.594543e+0},
	23: {2.617890e+0, 1.019135e+0, -3.292551e-2, -7.445123e-2},
	24: {1.075567e-2, 1.773287e-2, 9.610479e-3, 1.732469e-3},
	25: {1.476246e+0, 1.899331e+0, 1.195010e+0, 3.035051e-1},
	26: {5.502535e+0, -6.601663e-2, 9.968707e-2, 3.599801e-2},
	27: {9.511033e+1, 6.819618e+1, -1.045625e+1, -1.474939e+1},
	28: {3.113458e+1, 1.012033e+1, -4.650511e+0, -2.463185e+0},
	29: {1.413057e+0, 4.578814e-1, -6.850581e-2, -5.588658e-2},
	30: {3.910862e+1, 5.196646e+1, 2.264970e+1, 2.873680e+0},
	31: {4.597479e+0, -2.855179e-1, 2.709724e-1},
	32: {6.682518e+0, 2.827718e-1, -7.294429e-2},
	34: {1.910302e-1, 1.158624e-1, 3.348990e-2, 2.599706e-3},
	35: {3.931056e-1, 7.277637e-2, -1.366593e-1, -4.508946e-2},
	36: {3.267776e-1, 1.204424e-1, 9.988332e-2, 2.455361e-2},
	37: {5.990212e-1, 5.570264e-2, 6.207626e-2, 1.777283e-2},
	38: {7.330122e-1, 5.192827e-1, 2.316416e-1, 8.346941e-3},
	39: {1.172768e+0, -1.209262e-1, -1.193023e-1, -2.859837e-2},
	40: {3.982622e-1, -2.296279e-1, -2.262539e-1, -5.219837e-2},
	41: {3.571038e+0, -2.223625e-2, -2.611794e-2, -6.359648e-3},
	42: {1.9848e+0, 1.1386e+0, 3.5640e-1},
	43: {6.300e-2, 4.810e-2, 9.840e-3},
	44: {1.200e+0, 2.450e+0},
	45: {2.321400e-1, 1.828075e-3, -2.232007e-2, -3.378734e-3},
	46: {1.163659e-2, 3.427682e-3, 1.421393e-3, -3.710666e-3},
	47: {1.048020e-2, -1.231921e-2, -1.686860e-2, -4.234354e-3},
	48: {1.555590e+0, -3.223927e-1, -5.197429e-1, -1.066441e-1},
	49: {9.7700e-2, -2.3100e-1, -7.5300e-2},
	50: {2.4000e-1, 1.8000e-1, 5.9500e-1},
	51: {3.3000e-1, 1.3200e-1, 2.1800e-1},
	52: {1.1064e+0, 4.1500e-1, 1.8000e-1},
	53: {1.1900e+0, 3.7700e-1, 1.7600e-1},
	54: {3.855707e-1, -6.104166e-1, 5.676742e+0, 1.060894e+1, 5.284014e+0},
	55: {3.579064e-1, -6.442936e-1, 5.494644e+0, 1.054952e+1, 5.280991e+0},
	56: {9.587587e-1, 8.777464e-1, 2.017321e-1},
	57: {1.5135e+0, 3.7690e-1},
	58: {4.907546e-1, -1.683928e-1, -3.108742e-1, -7.202918e-2},
	59: {4.537070e+0, -4.465455e+0, -1.612690e+0, -1.623246e+0},
	60: {1.796220e+0, 2.814020e-1, 1.423325e+0, 3.421036e-1},
	61: {2.256216e+0, 3.773400e-1, 1.537867e+0, 4.396373e-1},
	62: {8.4300e-2, -4.7500e-2, -3.5200e-2},
	63: {7.3600e-2, 7.4900e-2, 4.4260e-2},
	64: {1.3600e-1, 3.5200e-2},
	65: {1.564231e-3, 1.653042e-3, -4.439786e-3, -4.951011e-3, -1.216530e-3},
	66: {1.4770e+0, 2.9600e-1},
	67: {5.210157e+0, -4.143695e+0, -2.120870e+0},
	68: {1.1160e+0, 1.6600e-1},
	69: {1.071489e+0, -1.164852e-1, -8.623831e-2, -1.582349e-2},
	70: {7.108492e-1, 7.935927e-1, 3.926983e-1, 3.622146e-2},
	71: {3.478514e+0, -2.585474e-2, -1.512955e-2, -2.833691e-3},
	72: {9.132108e-1, -1.653695e-1, 3.636784e-2},
	73: {3.969331e-3, 4.539076e-3, 1.720906e-3, 1.897857e-4},
	74: {1.600e+0, 7.640e-1, 3.322e-1},
	75: {8.109e-1, -6.282e-1},
	76: {1.192334e-2, 1.083057e-2, 1.230969e+0, 1.551656e+0},
	77: {-1.668868e-1, 5.818123e-1, -1.105027e+1, -1.668070e+1},
	78: {7.615495e-1, 1.068243e-1, -2.011333e-1, -9.371415e-2},
	79: {9.409838e+0, 1.522928e+0},
	80: {-2.7110e-1, -5.7560e-1, -8.3800e-2},
	81: {2.4930e+0, 1.1475e+0},
}

var bTable = [58][]float64{
	1:  {3.9700e-1, 2.8826e-1, 5.2930e-1},
	4:  {9.960283e-1, 8.164393e-1, 2.383830e+0, 2.223436e+0, 8.638115e-1},
	5:  {2.561062e-1, 7.072646e-2, -5.444596e-2, -5.798167e-2, -1.349129e-2},
	6:  {1.157338e+0, 1.467883e+0, 4.299661e+0, 3.130500e+0, 6.992080e-1},
	7:  {4.022765e-1, 3.050010e-1, 9.962137e-1, 7.914079e-1, 1.728098e-1},
	9:  {2.751631e+3, 3.557098e+2},
	10: {-3.820831e-2, 5.872664e-2},
	11: {1.071738e+2, -8.970339e+1, -3.949739e+1},
	12: {7.348793e+2, -1.531020e+2, -3.793700e+1},
	13: {9.219293e+0, -2.005865e+0, -5.561309e-1},
	14: {2.917412e+0, 1.575290e+0, 5.751814e-1},
	15: {3.629118e+0, -9.112722e-1, 1.042291e+0},
	16: {4.916389e+0, 2.862149e+0, 7.844850e-1},
	18: {5.496045e+1, -1.289968e+1, 6.385758e+0},
	19: {1.832694e+0, -5.766608e-2, 5.696128e-2},
	20: {1.211104e+2},
	21: {2.214088e+2, 2.187113e+2, 1.170177e+1, -2.635340e+1},
	22: {2.063983e+0, 7.363827e-1, 2.654323e-1, -6.140719e-2},
	23: {2.003160e+0, 9.388871e-1, 9.656450e-1},
	24: {1.609901e+1, 7.391573e+0, 2.277010e+1, 8.334227e+0},
	25: {1.747500e-1, 6.271202e-2, -2.324229e-2, -1.844559e-2},
	27: {2.752869e+0, 2.729201e-2, 4.996927e-1, 2.496551e-1},
	28: {3.518506e+0, 1.112440e+0, -4.556216e-1, -2.179426e-1},
	29: {1.626062e+2, -1.168838e+1, -5.498343e+0},
	30: {3.336833e-1, -1.458043e-1, -2.011751e-2},
	31: {7.425137e+1, 1.790236e+1, 3.033910e+1, 1.018259e+1},
	32: {9.268325e+2, -9.739859e+1, -7.702152e+1, -3.158268e+1},
	33: {2.474401e+0, 3.892972e-1},
	34: {1.127018e+1, 1.622158e+0, -1.443664e+0, -9.474699e-1},
	36: {1.445216e-1, -6.180219e-2, 3.093878e-2, 1.567090e-2},
	37: {1.304129e+0, 1.395919e-1, 4.142455e-3, -9.732503e-3},
	38: {5.114149e-1, -1.160850e-2},
	39: {1.314955e+2, 2.009258e+1, -5.143082e-1, -1.379140e+0},
	40: {1.823973e+1, -3.074559e+0, -4.307878e+0},
	41: {2.327037e+0, 2.403445e+0, 1.208407e+0, 2.087263e-1},
	42: {1.997378e+0, -8.126205e-1},
	43: {1.079113e-1, 1.762409e-2, 1.096601e-2, 3.058818e-3},
	44: {2.327409e+0, 6.901582e-1, -2.158431e-1, -1.084117e-1},
	46: {2.214315e+0, -1.975747e+0},
	48: {5.072525e+0, 1.146189e+1, 6.961724e+0, 1.316965e+0},
	49: {5.139740e+0},
	51: {1.125124e+0, 1.306486e+0, 3.622359e+0, 2.601976e+0, 3.031270e-1},
	52: {3.349489e-1, 4.531269e-3, 1.131793e-1, 2.300156e-1, 7.632745e-2},
	53: {1.467794e+0, 2.798142e+0, 9.455580e+0, 8.963904e+0, 3.339719e+0},
	54: {4.658512e-1, 2.597451e-1, 9.048179e-1, 7.394505e-1, 1.607092e-1},
	55: {1.0422e+0, 1.3156e-1, 4.5000e-2},
	56: {1.110866e+0, 9.623856e-1, 2.735487e+0, 2.445602e+0, 8.826352e-1},
	57: {-1.584333e-1, -1.728865e-1, -4.461431e-1, -3.925259e-1, -1.276203e-1},
}
