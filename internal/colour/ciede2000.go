package colour

import "math"

// pow25to7 is 25^7, the chroma reference used by G and RC.
const pow25to7 = 6103515625.0

// CIEDE2000 returns the CIE ΔE2000 colour difference between two OkLab colours,
// with unity weighting factors (kL = kC = kH = 1).
//
// The formula follows Luo, Cui and Rigg (2001). Hue angles are in radians,
// normalised into [0, 2π). Smaller values mean the colours look more alike.
func CIEDE2000(x, y OkLab) float64 {
	l1, a1, b1 := x.L, x.A, x.B
	l2, a2, b2 := y.L, y.A, y.B

	lMean := (l1 + l2) / 2.0
	c1 := math.Sqrt(a1*a1 + b1*b1)
	c2 := math.Sqrt(a2*a2 + b2*b2)
	cMean := (c1 + c2) / 2.0

	cMean7 := math.Pow(cMean, 7)
	g := (1 - math.Sqrt(cMean7/(cMean7+pow25to7))) / 2
	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := math.Sqrt(a1p*a1p + b1*b1)
	c2p := math.Sqrt(a2p*a2p + b2*b2)
	cMeanP := (c1p + c2p) / 2

	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	// Circular mean along the shortest arc.
	var hMeanP float64
	if math.Abs(h1p-h2p) > math.Pi {
		hMeanP = (h1p + h2p + 2*math.Pi) / 2
	} else {
		hMeanP = (h1p + h2p) / 2
	}

	t := 1.0 -
		0.17*math.Cos(hMeanP-math.Pi/6.0) +
		0.24*math.Cos(2*hMeanP) +
		0.32*math.Cos(3*hMeanP+math.Pi/30) -
		0.20*math.Cos(4*hMeanP-21*math.Pi/60)

	var dhp float64
	switch {
	case math.Abs(h1p-h2p) <= math.Pi:
		dhp = h2p - h1p
	case h2p <= h1p:
		dhp = h2p - h1p + 2*math.Pi
	default:
		dhp = h2p - h1p - 2*math.Pi
	}

	dLp := l2 - l1
	dCp := c2p - c1p
	dHp := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2.0)

	lOff := (lMean - 50) * (lMean - 50)
	sl := 1.0 + (0.015*lOff)/math.Sqrt(20+lOff)
	sc := 1.0 + 0.045*cMeanP
	sh := 1.0 + 0.015*cMeanP*t

	hDeg := hMeanP * 180 / math.Pi
	dTheta := (30 * math.Pi / 180) * math.Exp(-((hDeg-275)/25)*((hDeg-275)/25))
	cMeanP7 := math.Pow(cMeanP, 7)
	rc := 2 * math.Sqrt(cMeanP7/(cMeanP7+pow25to7))
	rt := -rc * math.Sin(2*dTheta)

	const kl, kc, kh = 1.0, 1.0, 1.0
	tl := dLp / (kl * sl)
	tc := dCp / (kc * sc)
	th := dHp / (kh * sh)

	sum := tl*tl + tc*tc + th*th + rt*tc*th
	if sum <= 0 || math.IsNaN(sum) {
		return 0
	}
	return math.Sqrt(sum)
}

// hueAngle returns atan2(b, a) shifted into [0, 2π).
func hueAngle(b, a float64) float64 {
	h := math.Atan2(b, a)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}
