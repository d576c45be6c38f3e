package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Rung is the structural form of one emitted rung, used by tests to
// compare generated documents without caring about blank-line runs.
type Rung struct {
	Body   string   // contact chain between the power rail and the coil
	Extras []string // indented lines: output list and timer/counter blocks
}

// ParseLadder parses an emitted ladder document back into its rungs.
func ParseLadder(data []byte) ([]Rung, error) {
	var rungs []Rung
	var cur *Rung

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "// Rung":
			rungs = append(rungs, Rung{})
			cur = &rungs[len(rungs)-1]
		case strings.HasPrefix(line, "|----"):
			if cur == nil {
				return nil, fmt.Errorf("diagram line before rung marker: %q", line)
			}
			body := strings.TrimPrefix(line, "|----")
			body, ok := strings.CutSuffix(body, "----( )----|")
			if !ok {
				return nil, fmt.Errorf("malformed diagram line: %q", line)
			}
			cur.Body = body
		case strings.HasPrefix(line, "     "):
			if cur == nil {
				return nil, fmt.Errorf("indented line before rung marker: %q", line)
			}
			cur.Extras = append(cur.Extras, strings.TrimPrefix(line, "     "))
		case strings.TrimSpace(line) == "":
			cur = nil
		default:
			return nil, fmt.Errorf("unexpected line: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rungs, nil
}

// CompareLadder compares two parsed documents and returns a human-readable
// diff, or "" when they match.
func CompareLadder(got, want []Rung) string {
	var buf bytes.Buffer
	if len(got) != len(want) {
		fmt.Fprintf(&buf, "rung count mismatch: got %d want %d\n", len(got), len(want))
	}
	n := len(got)
	if len(want) < n {
		n = len(want)
	}
	for i := 0; i < n; i++ {
		if got[i].Body != want[i].Body {
			fmt.Fprintf(&buf, "  rung[%d] body: got %q want %q\n", i, got[i].Body, want[i].Body)
		}
		if strings.Join(got[i].Extras, "|") != strings.Join(want[i].Extras, "|") {
			fmt.Fprintf(&buf, "  rung[%d] extras: got %v want %v\n", i, got[i].Extras, want[i].Extras)
		}
	}
	return buf.String()
}
