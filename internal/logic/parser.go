package logic

import (
	"errors"
	"fmt"
)

// ErrSyntax is the base kind for all expression syntax errors.
var ErrSyntax = errors.New("syntax error")

// Specific syntax error kinds. All match ErrSyntax with errors.Is.
var (
	ErrEmptyExpression  = fmt.Errorf("%w: empty expression", ErrSyntax)
	ErrMismatchedParens = fmt.Errorf("%w: mismatched parentheses", ErrSyntax)
	ErrTrailingTokens   = fmt.Errorf("%w: unexpected tokens after expression", ErrSyntax)
)

// ParseExpr tokenizes and parses one condition expression.
func ParseExpr(src string) (Expr, error) {
	return parseTokens(tokenize(src))
}

func parseTokens(tokens []token) (Expr, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}
	p := parser{tokens: tokens}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: %q", ErrTrailingTokens, tok.text)
	}
	return expr, nil
}

type parser struct {
	tokens []token
	i      int
}

func (p *parser) peek() token {
	if p.i >= len(p.tokens) {
		return token{kind: tokEOF}
	}
	return p.tokens[p.i]
}

func (p *parser) peekAt(n int) token {
	if p.i+n >= len(p.tokens) {
		return token{kind: tokEOF}
	}
	return p.tokens[p.i+n]
}

func (p *parser) next() token {
	tok := p.peek()
	if tok.kind != tokEOF {
		p.i++
	}
	return tok
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ExprOr{A: left, B: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ExprAnd{A: left, B: right}
	}
	return left, nil
}

func (p *parser) parseNot() (Expr, error) {
	if p.peek().kind == tokNot {
		p.next()
		x, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ExprNot{X: x}, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (Expr, error) {
	tok := p.peek()
	switch tok.kind {
	case tokLParen:
		p.next()
		x, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, ErrMismatchedParens
		}
		p.next()
		return x, nil
	case tokIdent:
		// Comparison lookahead: IDENT CMP_OP (IDENT|NUMBER) collapses into
		// a single CMP leaf; a bare identifier is a contact variable.
		if p.peekAt(1).kind == tokCmp {
			operand := p.peekAt(2)
			if operand.kind != tokIdent && operand.kind != tokNumber {
				return nil, fmt.Errorf("%w: expected operand after %q", ErrSyntax, p.peekAt(1).text)
			}
			left := p.next().text
			op := p.next().text
			right := p.next().text
			return ExprCmp{Left: left, Op: op, Right: right}, nil
		}
		p.next()
		return ExprVar{Name: tok.text}, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	default:
		return nil, fmt.Errorf("%w: unexpected token %q", ErrSyntax, tok.text)
	}
}
