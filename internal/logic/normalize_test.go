package logic

import (
	"reflect"
	"testing"
)

func TestBranches_NoOr(t *testing.T) {
	expr := ExprAnd{A: ExprVar{Name: "A"}, B: ExprNot{X: ExprVar{Name: "B"}}}
	got := Branches(expr)
	want := []Expr{expr}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestBranches_TopLevelOr(t *testing.T) {
	expr := ExprOr{A: ExprVar{Name: "A"}, B: ExprVar{Name: "B"}}
	got := Branches(expr)
	want := []Expr{ExprVar{Name: "A"}, ExprVar{Name: "B"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestBranches_OrChainKeepsOrder(t *testing.T) {
	// A OR B OR C parses left-associative; branches come out left to right.
	expr, err := ParseExpr("A OR B OR C")
	if err != nil {
		t.Fatal(err)
	}
	got := Branches(expr)
	want := []Expr{ExprVar{Name: "A"}, ExprVar{Name: "B"}, ExprVar{Name: "C"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestBranches_AndDistributesOverOr(t *testing.T) {
	expr, err := ParseExpr("A AND (B OR C)")
	if err != nil {
		t.Fatal(err)
	}
	got := Branches(expr)
	want := []Expr{
		ExprAnd{A: ExprVar{Name: "A"}, B: ExprVar{Name: "B"}},
		ExprAnd{A: ExprVar{Name: "A"}, B: ExprVar{Name: "C"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestBranches_DeMorganOverNotOr(t *testing.T) {
	expr, err := ParseExpr("NOT (A OR B)")
	if err != nil {
		t.Fatal(err)
	}
	got := Branches(expr)
	want := []Expr{
		ExprAnd{
			A: ExprNot{X: ExprVar{Name: "A"}},
			B: ExprNot{X: ExprVar{Name: "B"}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestBranches_DoubleNegationOverOr(t *testing.T) {
	expr, err := ParseExpr("NOT NOT (A OR B)")
	if err != nil {
		t.Fatal(err)
	}
	got := Branches(expr)
	want := []Expr{ExprVar{Name: "A"}, ExprVar{Name: "B"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestBranches_NotOverAndWithOrInside(t *testing.T) {
	// NOT (A AND (B OR C)) = NOT A OR (NOT B AND NOT C)
	expr, err := ParseExpr("NOT (A AND (B OR C))")
	if err != nil {
		t.Fatal(err)
	}
	got := Branches(expr)
	want := []Expr{
		ExprNot{X: ExprVar{Name: "A"}},
		ExprAnd{
			A: ExprNot{X: ExprVar{Name: "B"}},
			B: ExprNot{X: ExprVar{Name: "C"}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
