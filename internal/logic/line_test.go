package logic

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseLine_OutputList(t *testing.T) {
	stmt, err := ParseLine("IF Start AND NOT Stop THEN Motor, RunLamp")
	if err != nil {
		t.Fatal(err)
	}
	wantCond := ExprAnd{
		A: ExprVar{Name: "Start"},
		B: ExprNot{X: ExprVar{Name: "Stop"}},
	}
	if !reflect.DeepEqual(stmt.Cond, wantCond) {
		t.Errorf("cond = %#v, want %#v", stmt.Cond, wantCond)
	}
	wantOuts := []Output{Coil{Name: "Motor"}, Coil{Name: "RunLamp"}}
	if !reflect.DeepEqual(stmt.Outputs, wantOuts) {
		t.Errorf("outputs = %#v, want %#v", stmt.Outputs, wantOuts)
	}
}

func TestParseLine_Timer(t *testing.T) {
	stmt, err := ParseLine("IF Level > 10 THEN TON Timer1, 5s")
	if err != nil {
		t.Fatal(err)
	}
	want := []Output{ExprTimer{Type: "TON", Name: "Timer1", Param: "5s"}}
	if !reflect.DeepEqual(stmt.Outputs, want) {
		t.Errorf("outputs = %#v, want %#v", stmt.Outputs, want)
	}
}

func TestParseLine_Counter(t *testing.T) {
	stmt, err := ParseLine("IF PartSensor THEN CTD Remaining, 42")
	if err != nil {
		t.Fatal(err)
	}
	want := []Output{ExprCounter{Type: "CTD", Name: "Remaining", Preset: "42"}}
	if !reflect.DeepEqual(stmt.Outputs, want) {
		t.Errorf("outputs = %#v, want %#v", stmt.Outputs, want)
	}
}

func TestParseLine_NotApplicable(t *testing.T) {
	for _, in := range []string{"", "   ", "# comment", "OUTPUT Motor", "WHEN A THEN B"} {
		stmt, err := ParseLine(in)
		if stmt != nil || err != nil {
			t.Errorf("ParseLine(%q) = %v, %v; want nil, nil", in, stmt, err)
		}
	}
}

func TestParseLine_CaseInsensitiveKeywords(t *testing.T) {
	stmt, err := ParseLine("if Start then Motor")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(stmt.Cond, ExprVar{Name: "Start"}) {
		t.Errorf("cond = %#v", stmt.Cond)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	cases := []struct {
		in     string
		reason string
	}{
		{"IF A AND B", "missing THEN"},
		{"IF A AND THEN Motor", "condition"},
		{"IF (A OR B THEN Motor", "condition"},
		{"IF THEN Motor", "condition"},
	}
	for _, tc := range cases {
		stmt, err := ParseLine(tc.in)
		if err == nil {
			t.Errorf("ParseLine(%q) = %v, expected error", tc.in, stmt)
			continue
		}
		if !strings.Contains(err.Error(), tc.reason) {
			t.Errorf("ParseLine(%q) = %v, want reason containing %q", tc.in, err, tc.reason)
		}
	}
}

func TestParseLine_EmptyOutputNamesKept(t *testing.T) {
	stmt, err := ParseLine("IF A THEN X,,Y")
	if err != nil {
		t.Fatal(err)
	}
	want := []Output{Coil{Name: "X"}, Coil{Name: ""}, Coil{Name: "Y"}}
	if !reflect.DeepEqual(stmt.Outputs, want) {
		t.Errorf("outputs = %#v, want %#v", stmt.Outputs, want)
	}
}

func TestParse_Document(t *testing.T) {
	src := []byte(`# header comment
IF Start THEN Motor

IF A AND THEN Broken
IF Stop THEN Brake
`)
	prog, diags := Parse(src)
	if len(prog.Statements) != 2 {
		t.Fatalf("statements = %d, want 2", len(prog.Statements))
	}
	if prog.Statements[0].Line != 2 || prog.Statements[1].Line != 5 {
		t.Errorf("statement lines = %d, %d; want 2, 5", prog.Statements[0].Line, prog.Statements[1].Line)
	}
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(diags))
	}
	if diags[0].Line != 4 {
		t.Errorf("diagnostic line = %d, want 4", diags[0].Line)
	}
	if !strings.Contains(diags[0].Err.Error(), "line 4") {
		t.Errorf("diagnostic error = %v, want line prefix", diags[0].Err)
	}
}
