// Package expr compiles restricted single-variable math expressions into
// callable functions.
//
// The accepted notation is the one users type into a chart's equation field:
// implicit multiplication ("2x", "3(x+1)"), caret exponentiation ("x^2"),
// the functions sin, cos, tan, log (base 10), ln, sqrt and abs, and the
// constants pi and e. Input is normalized (whitespace stripped, lowercased)
// and run through an explicit tokenize / parse / evaluate pipeline; no
// dynamic code evaluation is involved.
//
// Evaluation never fails at runtime: out-of-domain inputs produce NaN, and
// Sample drops non-finite values from its output. A malformed expression
// fails at Compile time; Sample collapses that failure to an empty sequence,
// leaving "nothing to draw" decisions to the caller.
//
//	f, err := expr.Compile("sin(x)*x")
//	if err == nil {
//	    y := f(1.5)
//	}
//
//	points := expr.Sample("2x^2+3", -10, 10, 200)
package expr
