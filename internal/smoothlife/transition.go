package smoothlife

import "math"

// Birth and death intervals and the smoothing widths of the transition.
const (
	birthLow   = 0.278
	birthHigh  = 0.365
	deathLow   = 0.267
	deathHigh  = 0.445
	alphaOuter = 0.028
	alphaInner = 0.147
)

// Transition maps the normalised ring density n and disk density m to the
// next cell value. The result lies in (0, 1) for n and m in the ranges a
// kernel can produce.
func Transition(n, m float64) float64 {
	return bandPass(n, blend(birthLow, deathLow, m), blend(birthHigh, deathHigh, m))
}

// sigmoid is a logistic step centred at a with effective width alpha.
func sigmoid(x, a, alpha float64) float64 {
	return 1 / (1 + math.Exp(-(x-a)*4/alpha))
}

// sigmoidComplement is 1 - sigmoid(x, a, alpha) computed without cancellation,
// so the upper edge of the band never rounds to exactly zero.
func sigmoidComplement(x, a, alpha float64) float64 {
	return 1 / (1 + math.Exp((x-a)*4/alpha))
}

// bandPass is a soft indicator of a < x < b.
func bandPass(x, a, b float64) float64 {
	return sigmoid(x, a, alphaOuter) * sigmoidComplement(x, b, alphaOuter)
}

// blend interpolates from x to y as m crosses 0.5.
func blend(x, y, m float64) float64 {
	s := sigmoid(m, 0.5, alphaInner)
	return x*(1-s) + y*s
}
