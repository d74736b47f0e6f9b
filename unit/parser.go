package unit

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/hupe1980/unitgo/dimension"
)

// Expression grammar, folded left to right with power binding tightest:
//
//	expr   = term { ("*" | "/") term }
//	term   = factor [ ("**" | "^") exponent ]
//	factor = NAME | NUMBER | "(" expr ")"
//
// Each "/" negates the following term's contribution relative to the
// accumulation, matching textual order.

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokNumber
	tokMul
	tokDiv
	tokPow
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	expr string
	rest []rune
	pos  int
}

func newLexer(expr string) *lexer {
	return &lexer{expr: expr, rest: []rune(expr)}
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == 'µ' || r == 'μ' || r == '%' || r == '°'
}

func (l *lexer) next() (token, error) {
	for len(l.rest) > 0 && unicode.IsSpace(l.rest[0]) {
		l.rest = l.rest[1:]
		l.pos++
	}
	if len(l.rest) == 0 {
		return token{kind: tokEOF, pos: l.pos}, nil
	}
	start := l.pos
	r := l.rest[0]
	switch {
	case isNameRune(r):
		i := 0
		for i < len(l.rest) && isNameRune(l.rest[i]) {
			i++
		}
		text := string(l.rest[:i])
		l.rest = l.rest[i:]
		l.pos += i
		return token{kind: tokName, text: text, pos: start}, nil
	case unicode.IsDigit(r) || r == '.':
		i := 0
		for i < len(l.rest) && (unicode.IsDigit(l.rest[i]) || l.rest[i] == '.') {
			i++
		}
		// Scientific notation: 2.54e-5
		if i < len(l.rest) && (l.rest[i] == 'e' || l.rest[i] == 'E') {
			j := i + 1
			if j < len(l.rest) && (l.rest[j] == '+' || l.rest[j] == '-') {
				j++
			}
			if j < len(l.rest) && unicode.IsDigit(l.rest[j]) {
				for j < len(l.rest) && unicode.IsDigit(l.rest[j]) {
					j++
				}
				i = j
			}
		}
		text := string(l.rest[:i])
		l.rest = l.rest[i:]
		l.pos += i
		return token{kind: tokNumber, text: text, pos: start}, nil
	case r == '*':
		if len(l.rest) > 1 && l.rest[1] == '*' {
			l.rest = l.rest[2:]
			l.pos += 2
			return token{kind: tokPow, text: "**", pos: start}, nil
		}
		l.rest = l.rest[1:]
		l.pos++
		return token{kind: tokMul, text: "*", pos: start}, nil
	case r == '^':
		l.rest = l.rest[1:]
		l.pos++
		return token{kind: tokPow, text: "^", pos: start}, nil
	case r == '/':
		l.rest = l.rest[1:]
		l.pos++
		return token{kind: tokDiv, text: "/", pos: start}, nil
	case r == '(':
		l.rest = l.rest[1:]
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case r == ')':
		l.rest = l.rest[1:]
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case r == '-' || r == '+':
		// Signs only appear inside exponents; the parser consumes them
		// explicitly via lexSign.
		l.rest = l.rest[1:]
		l.pos++
		return token{kind: tokNumber, text: string(r), pos: start}, nil
	}
	return token{}, &ParseError{Expr: l.expr, Pos: start, Msg: "unexpected character " + strconv.QuoteRune(r)}
}

type parser struct {
	reg  *Registry
	lex  *lexer
	tok  token
	expr string
}

func (r *Registry) parseExpression(expr string) (*Unit, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, ErrEmptyExpression
	}
	p := &parser{reg: r, lex: newLexer(trimmed), expr: trimmed}
	if err := p.advance(); err != nil {
		return nil, err
	}
	u, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected trailing input")
	}
	return u, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(msg string) error {
	return &ParseError{Expr: p.expr, Pos: p.tok.pos, Msg: msg}
}

func (p *parser) parseExpr() (*Unit, error) {
	acc, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokMul || p.tok.kind == tokDiv {
		div := p.tok.kind == tokDiv
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if div {
			acc, err = acc.Div(rhs)
		} else {
			acc, err = acc.Mul(rhs)
		}
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (p *parser) parseTerm() (*Unit, error) {
	base, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokPow {
		return base, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	exp, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	u, err := base.Pow(exp)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (p *parser) parseFactor() (*Unit, error) {
	switch p.tok.kind {
	case tokName:
		u, err := p.reg.lookupAtom(p.tok.text)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return u, nil
	case tokNumber:
		f, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return nil, p.errorf("malformed number")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return scaled(f), nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		u, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, p.errorf("missing closing parenthesis")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return u, nil
	}
	return nil, p.errorf("expected unit name, number or parenthesis")
}

// parseExponent accepts a signed integer or float, optionally inside
// parentheses, and a parenthesized fraction: 2, -2, 0.5, (-3), (1/2).
func (p *parser) parseExponent() (dimension.Rational, error) {
	paren := false
	if p.tok.kind == tokLParen {
		paren = true
		if err := p.advance(); err != nil {
			return dimension.Rational{}, err
		}
	}
	sign := 1.0
	for p.tok.kind == tokNumber && (p.tok.text == "-" || p.tok.text == "+") {
		if p.tok.text == "-" {
			sign = -sign
		}
		if err := p.advance(); err != nil {
			return dimension.Rational{}, err
		}
	}
	if p.tok.kind != tokNumber {
		return dimension.Rational{}, p.errorf("expected exponent")
	}
	f, err := strconv.ParseFloat(p.tok.text, 64)
	if err != nil {
		return dimension.Rational{}, p.errorf("malformed exponent")
	}
	if err := p.advance(); err != nil {
		return dimension.Rational{}, err
	}
	if paren && p.tok.kind == tokDiv {
		if err := p.advance(); err != nil {
			return dimension.Rational{}, err
		}
		if p.tok.kind != tokNumber {
			return dimension.Rational{}, p.errorf("expected exponent denominator")
		}
		d, derr := strconv.ParseFloat(p.tok.text, 64)
		if derr != nil || d == 0 {
			return dimension.Rational{}, p.errorf("malformed exponent")
		}
		f /= d
		if err := p.advance(); err != nil {
			return dimension.Rational{}, err
		}
	}
	if paren {
		if p.tok.kind != tokRParen {
			return dimension.Rational{}, p.errorf("missing closing parenthesis")
		}
		if err := p.advance(); err != nil {
			return dimension.Rational{}, err
		}
	}
	r, ok := dimension.FromFloat(sign * f)
	if !ok {
		return dimension.Rational{}, &DimensionError{Op: "pow", Detail: "exponent has no exact rational form"}
	}
	return r, nil
}
