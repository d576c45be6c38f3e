package ladder

import (
	"fmt"
	"strings"

	"github.com/Ritiksuman07/ladderlogic-gen/internal/logic"
)

const indent = "     "

// Config selects the target platform and, optionally, a format table to
// use instead of the built-in one.
type Config struct {
	Platform string
	Formats  Table
}

// Render generates the ladder document for a parsed program. Statements
// appear in input order; a statement whose condition splits into several
// disjunctive branches emits one rung per branch, against the same outputs.
func Render(prog logic.Program, cfg Config) string {
	table := cfg.Formats
	if table == nil {
		table = Builtin()
	}
	formats := table.Lookup(cfg.Platform)

	var buf strings.Builder
	for _, stmt := range prog.Statements {
		buf.WriteString(renderStatement(stmt, formats))
	}
	return buf.String()
}

func renderStatement(stmt logic.Statement, formats Formats) string {
	var rungs []string
	for _, branch := range logic.Branches(stmt.Cond) {
		body, err := bodyText(branch)
		if err != nil {
			// Unrenderable branch contributes nothing.
			continue
		}
		rungs = append(rungs, rungText(body, stmt.Outputs, formats))
	}
	return strings.Join(rungs, "\n")
}

func rungText(body string, outputs []logic.Output, formats Formats) string {
	var b strings.Builder
	b.WriteString("// Rung\n")
	b.WriteString("|----")
	b.WriteString(body)
	b.WriteString("----( )----|\n")

	var coils []string
	for _, out := range outputs {
		if c, ok := out.(logic.Coil); ok {
			coils = append(coils, c.Name)
		}
	}
	if len(coils) > 0 {
		b.WriteString(indent)
		b.WriteString(strings.Join(coils, ", "))
		b.WriteByte('\n')
	}
	for _, out := range outputs {
		switch out := out.(type) {
		case logic.ExprTimer:
			b.WriteString(indent)
			b.WriteString(expand(formats.Timer, out.Type, out.Name, out.Param))
			b.WriteByte('\n')
		case logic.ExprCounter:
			b.WriteString(indent)
			b.WriteString(expand(formats.Counter, out.Type, out.Name, out.Preset))
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// bodyText renders one OR-free expression as a series contact chain.
func bodyText(expr logic.Expr) (string, error) {
	switch e := expr.(type) {
	case logic.ExprVar:
		return "[ ] " + e.Name, nil
	case logic.ExprCmp:
		return fmt.Sprintf("[ ] %s %s %s", e.Left, e.Op, e.Right), nil
	case logic.ExprNot:
		child, err := bodyText(e.X)
		if err != nil {
			return "", err
		}
		return "[/] " + child, nil
	case logic.ExprAnd:
		left, err := bodyText(e.A)
		if err != nil {
			return "", err
		}
		right, err := bodyText(e.B)
		if err != nil {
			return "", err
		}
		return left + "----" + right, nil
	case logic.ExprOr:
		return "", fmt.Errorf("OR cannot render inside a rung body")
	default:
		return "", fmt.Errorf("%T cannot render inside a rung body", expr)
	}
}
