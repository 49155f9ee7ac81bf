package expr

import (
	"fmt"
	"math"

	"github.com/Tajwarbot/Graphly/dataset"
	"github.com/Tajwarbot/Graphly/errs"
)

const (
	// DefaultXMin and DefaultXMax bound the sample range when the caller has
	// no viewport to derive one from.
	DefaultXMin = -10.0
	DefaultXMax = 10.0

	// DefaultSteps is the sample resolution for function plots.
	DefaultSteps = 200
)

// Compile turns an equation string into a callable function of x.
//
// The returned function never panics; evaluation outside a function's domain
// (for example sqrt of a negative) and any other non-finite outcome yield NaN.
// A syntactically invalid equation is reported as an error here rather than
// at evaluation time.
func Compile(equation string) (Func, error) {
	toks, err := tokenize(normalize(equation))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", equation, err)
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("compile %q: %w", equation, errs.ErrEmptyEquation)
	}

	p := &parser{toks: toks}
	f, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", equation, err)
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("compile %q: unexpected trailing input", equation)
	}

	return func(x float64) float64 {
		y := f(x)
		if math.IsInf(y, 0) {
			return math.NaN()
		}

		return y
	}, nil
}

// Sample evaluates equation across [xMin, xMax] in steps increments and
// returns the finite samples in x order.
//
// The walk is inclusive of both endpoints (steps increments produce steps+1
// candidate samples). Samples that evaluate to NaN are dropped, and a
// malformed equation yields an empty sequence; neither case is an error.
func Sample(equation string, xMin, xMax float64, steps int) []dataset.Point {
	f, err := Compile(equation)
	if err != nil {
		return nil
	}

	return SampleFunc(f, xMin, xMax, steps)
}

// SampleFunc samples an already compiled function across [xMin, xMax],
// keeping only finite results.
func SampleFunc(f Func, xMin, xMax float64, steps int) []dataset.Point {
	if f == nil || math.IsNaN(xMin) || math.IsNaN(xMax) {
		return nil
	}
	if steps <= 0 {
		steps = DefaultSteps
	}

	dx := (xMax - xMin) / float64(steps)
	points := make([]dataset.Point, 0, steps+1)

	for i := 0; i <= steps; i++ {
		x := xMin + float64(i)*dx
		y := f(x)
		if math.IsNaN(y) {
			continue
		}
		points = append(points, dataset.Point{X: x, Y: y})
	}

	return points
}
