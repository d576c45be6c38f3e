package logic

import "unicode"

// Lexer for condition expressions

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokAnd
	tokOr
	tokNot
	tokTimer   // TON, TOF
	tokCounter // CTU, CTD
	tokCmp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
}

var keywords = map[string]tokenKind{
	"AND": tokAnd,
	"OR":  tokOr,
	"NOT": tokNot,
	"TON": tokTimer,
	"TOF": tokTimer,
	"CTU": tokCounter,
	"CTD": tokCounter,
}

type lexer struct {
	s string
	i int
}

func newLexer(s string) *lexer { return &lexer{s: s} }

// tokenize scans the whole input. Bytes that start no recognized token are
// skipped so un-lexable text reads as absent rather than invalid.
func tokenize(s string) []token {
	lex := newLexer(s)
	var out []token
	for {
		tok := lex.next()
		if tok.kind == tokEOF {
			return out
		}
		out = append(out, tok)
	}
}

func (l *lexer) next() token {
	for l.i < len(l.s) {
		for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
			l.i++
		}
		if l.i >= len(l.s) {
			break
		}
		ch := l.s[l.i]
		switch ch {
		case '(':
			l.i++
			return token{kind: tokLParen, text: "("}
		case ')':
			l.i++
			return token{kind: tokRParen, text: ")"}
		case ',':
			l.i++
			return token{kind: tokComma, text: ","}
		case '<', '>':
			start := l.i
			l.i++
			if l.i < len(l.s) && l.s[l.i] == '=' {
				l.i++
			}
			return token{kind: tokCmp, text: l.s[start:l.i]}
		case '=', '!':
			if l.i+1 < len(l.s) && l.s[l.i+1] == '=' {
				start := l.i
				l.i += 2
				return token{kind: tokCmp, text: l.s[start:l.i]}
			}
		}

		if isIdentStart(ch) {
			start := l.i
			l.i++
			for l.i < len(l.s) && isIdentPart(l.s[l.i]) {
				l.i++
			}
			text := l.s[start:l.i]
			if kind, ok := keywords[text]; ok {
				return token{kind: kind, text: text}
			}
			return token{kind: tokIdent, text: text}
		}
		if isDigit(ch) {
			start := l.i
			l.i++
			for l.i < len(l.s) && isDigit(l.s[l.i]) {
				l.i++
			}
			if l.i < len(l.s) && l.s[l.i] == '.' {
				l.i++
				for l.i < len(l.s) && isDigit(l.s[l.i]) {
					l.i++
				}
			}
			// Optional duration unit: 5s, 100ms
			if l.i+1 < len(l.s) && l.s[l.i] == 'm' && l.s[l.i+1] == 's' && !followedByIdent(l.s, l.i+2) {
				l.i += 2
			} else if l.i < len(l.s) && l.s[l.i] == 's' && !followedByIdent(l.s, l.i+1) {
				l.i++
			}
			return token{kind: tokNumber, text: l.s[start:l.i]}
		}

		// Unrecognized byte, skip it.
		l.i++
	}
	return token{kind: tokEOF}
}

func isIdentStart(b byte) bool {
	return unicode.IsLetter(rune(b)) || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || unicode.IsDigit(rune(b))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// followedByIdent reports whether position i continues an identifier, in
// which case a would-be unit suffix belongs to a name, not a number.
func followedByIdent(s string, i int) bool {
	return i < len(s) && isIdentPart(s[i])
}
