// Package logic parses the line-oriented conditional description language
// (IF <boolean expression> THEN <outputs|timer|counter>) into an AST.
package logic

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Parse reads one logic document, line by line. Each statement is parsed
// independently; nothing carries over between lines. Lines that resemble a
// statement but fail to parse are reported as diagnostics and skipped, so
// a caller can surface them instead of losing them.
func Parse(src []byte) (Program, []Diagnostic) {
	var prog Program
	var diags []Diagnostic

	sc := bufio.NewScanner(bytes.NewReader(src))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		stmt, err := ParseLine(raw)
		if err != nil {
			diags = append(diags, Diagnostic{
				Line: lineNo,
				Text: strings.TrimSpace(raw),
				Err:  fmt.Errorf("line %d: %w", lineNo, err),
			})
			continue
		}
		if stmt == nil {
			continue
		}
		stmt.Line = lineNo
		prog.Statements = append(prog.Statements, *stmt)
	}
	return prog, diags
}
