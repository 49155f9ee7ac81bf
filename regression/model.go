package regression

import (
	"fmt"
	"math"
	"strings"

	"github.com/Tajwarbot/Graphly/numfmt"
)

// Kind identifies a trendline model family.
type Kind int

const (
	// Linear fits y = m*x + b.
	Linear Kind = iota
	// Quadratic fits y = a*x² + b*x + c.
	Quadratic
	// Exponential fits y = a * e^(b*x); requires y > 0.
	Exponential
	// Power fits y = a * x^b; requires x > 0 and y > 0.
	Power
	// Logarithmic fits y = a + b * ln(x); requires x > 0.
	Logarithmic
)

var kindNames = map[Kind]string{
	Linear:      "linear",
	Quadratic:   "quadratic",
	Exponential: "exponential",
	Power:       "power",
	Logarithmic: "logarithmic",
}

// String returns the string representation of the model kind.
func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}

	return "unknown"
}

var kindFromString = map[string]Kind{
	"linear":      Linear,
	"quadratic":   Quadratic,
	"exponential": Exponential,
	"power":       Power,
	"logarithmic": Logarithmic,
}

// KindFromString returns the Kind for a given string name.
// Returns Kind(-1) for unknown names.
func KindFromString(name string) Kind {
	if kind, exists := kindFromString[strings.ToLower(name)]; exists {
		return kind
	}

	return Kind(-1)
}

// Result holds a fitted trendline model.
//
// Coeffs layout per kind:
//   - Linear: [slope, intercept]
//   - Quadratic: [a, b, c] for y = a*x² + b*x + c
//   - Exponential, Power, Logarithmic: [a, b]
type Result struct {
	// Kind is the fitted model family.
	Kind Kind
	// Coeffs contains the fitted parameters.
	Coeffs []float64
	// R2 is the coefficient of determination over the fitted point set.
	R2 float64
	// Equation is the display-ready formula with formatted coefficients.
	Equation string
}

// String returns a human-readable summary of the fitted model.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Kind: %s, R²: %.4f, Equation: %s}", r.Kind, r.R2, r.Equation)
}

// Eval computes the fitted model's y at the given x.
//
// Out-of-domain inputs follow the underlying math: logarithmic and power
// models return NaN for x <= 0 rather than a substitute value, so callers
// sampling a curve can skip those samples.
func (r *Result) Eval(x float64) float64 {
	c := r.Coeffs

	switch r.Kind {
	case Linear:
		return c[0]*x + c[1]
	case Quadratic:
		return c[0]*x*x + c[1]*x + c[2]
	case Exponential:
		return c[0] * math.Exp(c[1]*x)
	case Power:
		if x <= 0 {
			return math.NaN()
		}
		return c[0] * math.Pow(x, c[1])
	case Logarithmic:
		if x <= 0 {
			return math.NaN()
		}
		return c[0] + c[1]*math.Log(x)
	default:
		return math.NaN()
	}
}

// equationFor renders the display formula for a fitted model. Coefficients go
// through numfmt.Format so equation text matches every other number shown in
// the chart.
func equationFor(kind Kind, coeffs []float64) string {
	switch kind {
	case Linear:
		return fmt.Sprintf("y = %sx %s", numfmt.Format(coeffs[0]), signedTerm(coeffs[1]))
	case Quadratic:
		return fmt.Sprintf("y = %sx² %sx %s",
			numfmt.Format(coeffs[0]), signedTerm(coeffs[1]), signedTerm(coeffs[2]))
	case Exponential:
		return fmt.Sprintf("y = %se^(%sx)", numfmt.Format(coeffs[0]), numfmt.Format(coeffs[1]))
	case Power:
		return fmt.Sprintf("y = %sx^%s", numfmt.Format(coeffs[0]), numfmt.Format(coeffs[1]))
	case Logarithmic:
		return fmt.Sprintf("y = %s %sln(x)", numfmt.Format(coeffs[0]), signedTerm(coeffs[1]))
	default:
		return ""
	}
}

// signedTerm renders a signed term with an explicit operator,
// e.g. "+ 1.000" or "- 1.000".
func signedTerm(v float64) string {
	if v < 0 {
		return "- " + numfmt.Format(-v)
	}

	return "+ " + numfmt.Format(v)
}
