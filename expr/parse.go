package expr

import (
	"fmt"
	"math"
)

// Func evaluates a compiled expression at a single x value.
type Func func(x float64) float64

// parser consumes a token stream via recursive descent.
//
// Grammar (caret is right-associative and binds tighter than unary minus on
// its left operand, matching conventional math notation):
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary }
//	unary  = "-" unary | power
//	power  = atom [ "^" unary ]
//	atom   = number | name | name "(" expr ")" | "(" expr ")"
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}

	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}

	return tok, ok
}

func (p *parser) parseExpr() (Func, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOp || (tok.op != '+' && tok.op != '-') {
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		lhs, rhs := left, right
		if tok.op == '+' {
			left = func(x float64) float64 { return lhs(x) + rhs(x) }
		} else {
			left = func(x float64) float64 { return lhs(x) - rhs(x) }
		}
	}
}

func (p *parser) parseTerm() (Func, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOp || (tok.op != '*' && tok.op != '/') {
			return left, nil
		}
		p.pos++

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		lhs, rhs := left, right
		if tok.op == '*' {
			left = func(x float64) float64 { return lhs(x) * rhs(x) }
		} else {
			left = func(x float64) float64 { return lhs(x) / rhs(x) }
		}
	}
}

func (p *parser) parseUnary() (Func, error) {
	if tok, ok := p.peek(); ok && tok.kind == tokOp && tok.op == '-' {
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return func(x float64) float64 { return -operand(x) }, nil
	}

	return p.parsePower()
}

func (p *parser) parsePower() (Func, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok || tok.kind != tokOp || tok.op != '^' {
		return base, nil
	}
	p.pos++

	// Right-associative: the exponent may itself be a power or unary minus.
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return func(x float64) float64 { return math.Pow(base(x), exponent(x)) }, nil
}

func (p *parser) parseAtom() (Func, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}

	switch tok.kind {
	case tokNumber:
		v := tok.num
		return func(float64) float64 { return v }, nil

	case tokName:
		if tok.name == "x" {
			return func(x float64) float64 { return x }, nil
		}
		if c, ok := constants[tok.name]; ok {
			return func(float64) float64 { return c }, nil
		}
		fn, ok := functions[tok.name]
		if !ok {
			return nil, fmt.Errorf("unknown name %q", tok.name)
		}

		if next, ok := p.next(); !ok || next.kind != tokLParen {
			return nil, fmt.Errorf("%s requires parenthesized argument", tok.name)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if next, ok := p.next(); !ok || next.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis after %s argument", tok.name)
		}

		return func(x float64) float64 { return fn(arg(x)) }, nil

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if next, ok := p.next(); !ok || next.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}

		return inner, nil

	case tokRParen:
		return nil, fmt.Errorf("unexpected closing parenthesis")

	default:
		return nil, fmt.Errorf("unexpected operator %q", tok.op)
	}
}
