package regression

import (
	"math"
	"slices"

	"github.com/Tajwarbot/Graphly/dataset"
)

// Fit fits the given model family to a point set.
//
// The input is filtered before fitting: non-finite points are dropped, the
// survivors are sorted ascending by x, and points outside the family's domain
// (see Kind) are excluded. Fit returns nil when fewer than two points survive
// or when the fit degenerates (all x identical, singular quadratic system);
// callers treat nil as "no trendline", not as a failure.
func Fit(points []dataset.Point, kind Kind) *Result {
	pts := prepare(points, kind)
	if len(pts) < 2 {
		return nil
	}

	var coeffs []float64
	switch kind {
	case Linear:
		coeffs = fitLinear(pts)
	case Quadratic:
		coeffs = fitQuadratic(pts)
	case Exponential:
		coeffs = fitExponential(pts)
	case Power:
		coeffs = fitPower(pts)
	case Logarithmic:
		coeffs = fitLogarithmic(pts)
	default:
		return nil
	}
	if coeffs == nil {
		return nil
	}

	result := &Result{
		Kind:     kind,
		Coeffs:   coeffs,
		Equation: equationFor(kind, coeffs),
	}
	result.R2 = rSquared(pts, result)

	return result
}

// prepare filters out non-finite and out-of-domain points and sorts the
// survivors ascending by x. The input slice is not modified.
func prepare(points []dataset.Point, kind Kind) []dataset.Point {
	pts := make([]dataset.Point, 0, len(points))

	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		if !inDomain(p, kind) {
			continue
		}
		pts = append(pts, p)
	}

	slices.SortFunc(pts, func(a, b dataset.Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})

	return pts
}

// inDomain reports whether p satisfies the model family's domain restriction.
func inDomain(p dataset.Point, kind Kind) bool {
	switch kind {
	case Exponential:
		return p.Y > 0
	case Power:
		return p.X > 0 && p.Y > 0
	case Logarithmic:
		return p.X > 0
	default:
		return true
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ols solves ordinary least squares y = slope*x + intercept over the given
// pairs using the standard closed-form sums. ok is false when all x values
// coincide (zero denominator).
func ols(xs, ys []float64) (slope, intercept float64, ok bool) {
	n := float64(len(xs))

	var sumX, sumY, sumXY, sumX2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, 0, false
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	return slope, intercept, true
}

// fitLinear fits y = m*x + b directly.
func fitLinear(pts []dataset.Point) []float64 {
	xs, ys := split(pts, func(p dataset.Point) (float64, float64) {
		return p.X, p.Y
	})

	m, b, ok := ols(xs, ys)
	if !ok {
		return nil
	}

	return []float64{m, b}
}

// fitExponential fits y = a * e^(b*x) by regressing ln(y) on x.
func fitExponential(pts []dataset.Point) []float64 {
	xs, ys := split(pts, func(p dataset.Point) (float64, float64) {
		return p.X, math.Log(p.Y)
	})

	b, logA, ok := ols(xs, ys)
	if !ok {
		return nil
	}

	return []float64{math.Exp(logA), b}
}

// fitPower fits y = a * x^b by regressing ln(y) on ln(x).
func fitPower(pts []dataset.Point) []float64 {
	xs, ys := split(pts, func(p dataset.Point) (float64, float64) {
		return math.Log(p.X), math.Log(p.Y)
	})

	b, logA, ok := ols(xs, ys)
	if !ok {
		return nil
	}

	return []float64{math.Exp(logA), b}
}

// fitLogarithmic fits y = a + b*ln(x) by regressing y on ln(x).
func fitLogarithmic(pts []dataset.Point) []float64 {
	xs, ys := split(pts, func(p dataset.Point) (float64, float64) {
		return math.Log(p.X), p.Y
	})

	b, a, ok := ols(xs, ys)
	if !ok {
		return nil
	}

	return []float64{a, b}
}

// fitQuadratic fits y = a*x² + b*x + c through the normal equations:
//
//	[n    Σx   Σx² ] [c]   [Σy  ]
//	[Σx   Σx²  Σx³ ] [b] = [Σxy ]
//	[Σx²  Σx³  Σx⁴ ] [a]   [Σx²y]
//
// solved by Cramer's rule. A zero system determinant (insufficient x spread)
// yields nil.
func fitQuadratic(pts []dataset.Point) []float64 {
	n := float64(len(pts))

	var sumX, sumX2, sumX3, sumX4, sumY, sumXY, sumX2Y float64
	for _, p := range pts {
		x2 := p.X * p.X
		sumX += p.X
		sumX2 += x2
		sumX3 += x2 * p.X
		sumX4 += x2 * x2
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2Y += x2 * p.Y
	}

	det := det3(
		n, sumX, sumX2,
		sumX, sumX2, sumX3,
		sumX2, sumX3, sumX4,
	)
	if det == 0 {
		return nil
	}

	c := det3(
		sumY, sumX, sumX2,
		sumXY, sumX2, sumX3,
		sumX2Y, sumX3, sumX4,
	) / det
	b := det3(
		n, sumY, sumX2,
		sumX, sumXY, sumX3,
		sumX2, sumX2Y, sumX4,
	) / det
	a := det3(
		n, sumX, sumY,
		sumX, sumX2, sumXY,
		sumX2, sumX3, sumX2Y,
	) / det

	return []float64{a, b, c}
}

// det3 computes the determinant of a 3×3 matrix given in row-major order.
func det3(a, b, c, d, e, f, g, h, i float64) float64 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// rSquared computes the coefficient of determination of the fitted model
// over the same filtered point set used for fitting. A zero total sum of
// squares (all y identical) reports 0 rather than dividing by zero.
func rSquared(pts []dataset.Point, r *Result) float64 {
	var meanY float64
	for _, p := range pts {
		meanY += p.Y
	}
	meanY /= float64(len(pts))

	var ssTot, ssRes float64
	for _, p := range pts {
		predicted := r.Eval(p.X)
		ssTot += (p.Y - meanY) * (p.Y - meanY)
		ssRes += (p.Y - predicted) * (p.Y - predicted)
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - ssRes/ssTot
}

// split projects points through fn into parallel x and y slices.
func split(pts []dataset.Point, fn func(dataset.Point) (float64, float64)) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = fn(p)
	}

	return xs, ys
}
