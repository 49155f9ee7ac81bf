package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokName             // variable, constant or function name
	tokOp               // + - * / ^
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	num  float64 // tokNumber
	name string  // tokName
	op   byte    // tokOp
}

// functions maps supported function names to their implementations.
// log is base 10, ln is the natural logarithm.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"log":  math.Log10,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

// constants maps supported constant names to their values.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// knownNames is every identifier the scanner may emit, longest first so that
// greedy matching inside a letter run prefers "sqrt" over "s"-prefixed noise
// and "pi" over "p".
var knownNames = []string{"sqrt", "sin", "cos", "tan", "log", "abs", "ln", "pi", "e", "x"}

// normalize strips whitespace and lowercases the input.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// tokenize scans a normalized expression into tokens, inserting implicit
// multiplication where the notation omits it (e.g. "2x", "3(x+1)", "(x+1)x").
func tokenize(s string) ([]token, error) {
	var toks []token

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				j++
			}
			num, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", s[i:j])
			}
			toks = append(toks, token{kind: tokNumber, num: num})
			i = j
		case c >= 'a' && c <= 'z':
			j := i
			for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
				j++
			}
			names, err := splitNames(s[i:j])
			if err != nil {
				return nil, err
			}
			for _, name := range names {
				toks = append(toks, token{kind: tokName, name: name})
			}
			i = j
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokOp, op: c})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}

	return insertImplicitMul(toks), nil
}

// splitNames breaks a run of letters into known identifiers, greedily taking
// the longest match at each position ("xsin" -> ["x", "sin"]).
func splitNames(run string) ([]string, error) {
	var names []string

	for len(run) > 0 {
		matched := ""
		for _, name := range knownNames {
			if strings.HasPrefix(run, name) {
				matched = name
				break
			}
		}
		if matched == "" {
			return nil, fmt.Errorf("unknown identifier %q", run)
		}
		names = append(names, matched)
		run = run[len(matched):]
	}

	return names, nil
}

// insertImplicitMul inserts a '*' token wherever a value-producing token is
// immediately followed by a token that starts a new value. Function names are
// not value producers; "sin(" stays a call while "x(" becomes "x*(".
func insertImplicitMul(toks []token) []token {
	out := make([]token, 0, len(toks))

	for i, tok := range toks {
		if i > 0 && startsValue(tok) && producesValue(toks[i-1]) {
			out = append(out, token{kind: tokOp, op: '*'})
		}
		out = append(out, tok)
	}

	return out
}

// producesValue reports whether tok can end a value: a number, a closing
// parenthesis, the variable or a constant.
func producesValue(tok token) bool {
	switch tok.kind {
	case tokNumber, tokRParen:
		return true
	case tokName:
		_, isFunc := functions[tok.name]
		return !isFunc
	default:
		return false
	}
}

// startsValue reports whether tok can begin a value: a number, an opening
// parenthesis, or any name (variable, constant or function).
func startsValue(tok token) bool {
	switch tok.kind {
	case tokNumber, tokLParen, tokName:
		return true
	default:
		return false
	}
}
