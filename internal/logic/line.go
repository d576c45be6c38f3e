package logic

import (
	"fmt"
	"regexp"
	"strings"
)

// Consequence classifiers. Prefix matches: trailing text after a
// well-formed timer/counter spec is ignored.
var (
	timerRe   = regexp.MustCompile(`^(TON|TOF)\s+([A-Za-z_][A-Za-z0-9_]*)\s*,\s*([0-9]+(?:ms|s))`)
	counterRe = regexp.MustCompile(`^(CTU|CTD)\s+([A-Za-z_][A-Za-z0-9_]*)\s*,\s*([0-9]+)`)
)

// ParseLine parses a single logic line, for example:
//
//	IF Start AND NOT Stop THEN Motor
//
// Blank lines and lines that do not start with IF return (nil, nil): they
// are not logic statements and contribute nothing. Lines that do start
// with IF but cannot be parsed return the reason instead of vanishing.
func ParseLine(raw string) (*Statement, error) {
	line := strings.TrimSpace(raw)
	if len(line) < 2 || !strings.EqualFold(line[:2], "IF") {
		return nil, nil
	}
	rest := line[2:]

	condSrc, thenSrc, ok := splitThen(rest)
	if !ok {
		return nil, fmt.Errorf("missing THEN")
	}
	cond, err := ParseExpr(condSrc)
	if err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}
	return &Statement{Cond: cond, Outputs: parseConsequence(thenSrc)}, nil
}

// splitThen splits at the first case-insensitive THEN keyword.
func splitThen(s string) (cond, then string, ok bool) {
	idx := strings.Index(strings.ToUpper(s), "THEN")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+len("THEN"):]), true
}

func parseConsequence(s string) []Output {
	if m := timerRe.FindStringSubmatch(s); m != nil {
		return []Output{ExprTimer{Type: m[1], Name: m[2], Param: m[3]}}
	}
	if m := counterRe.FindStringSubmatch(s); m != nil {
		return []Output{ExprCounter{Type: m[1], Name: m[2], Preset: m[3]}}
	}
	parts := strings.Split(s, ",")
	outs := make([]Output, 0, len(parts))
	for _, p := range parts {
		outs = append(outs, Coil{Name: strings.TrimSpace(p)})
	}
	return outs
}
