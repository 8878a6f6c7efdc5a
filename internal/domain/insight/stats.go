package insight

import "math"

// pearson computes the Pearson linear-correlation coefficient of two
// numeric series, rounded to 2 decimal places. The coefficient is defined
// as 0 (never NaN) when fewer than 3 pairs exist or when either series
// has zero variance. Series of unequal length are truncated to the
// shorter one.
func pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < 3 {
		return 0
	}

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var num, dx, dy float64
	for i := 0; i < n; i++ {
		xd := x[i] - meanX
		yd := y[i] - meanY
		num += xd * yd
		dx += xd * xd
		dy += yd * yd
	}

	denom := math.Sqrt(dx * dy)
	if denom == 0 {
		return 0
	}
	return round2(num / denom)
}
