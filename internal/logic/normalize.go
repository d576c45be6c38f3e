package logic

// Branches rewrites expr into its disjunctive branches: a list of OR-free
// expressions whose disjunction is equivalent to expr. Each branch becomes
// its own rung. OR concatenates left branches before right ones, AND
// distributes over multi-branch children, and NOT over an OR-containing
// subtree is pushed inward by De Morgan. Subtrees without OR come back
// untouched, so their rendering is unchanged.
func Branches(expr Expr) []Expr {
	switch e := expr.(type) {
	case ExprOr:
		return append(Branches(e.A), Branches(e.B)...)
	case ExprAnd:
		left := Branches(e.A)
		right := Branches(e.B)
		if len(left) == 1 && len(right) == 1 {
			return []Expr{ExprAnd{A: left[0], B: right[0]}}
		}
		out := make([]Expr, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				out = append(out, ExprAnd{A: l, B: r})
			}
		}
		return out
	case ExprNot:
		if !containsOr(e.X) {
			return []Expr{e}
		}
		return Branches(negate(e.X))
	default:
		return []Expr{expr}
	}
}

// negate pushes a logical negation one level into expr. Negating AND
// introduces OR, which Branches lifts on the way back up.
func negate(expr Expr) Expr {
	switch e := expr.(type) {
	case ExprOr:
		return ExprAnd{A: negate(e.A), B: negate(e.B)}
	case ExprAnd:
		return ExprOr{A: negate(e.A), B: negate(e.B)}
	case ExprNot:
		return e.X
	default:
		return ExprNot{X: expr}
	}
}

func containsOr(expr Expr) bool {
	switch e := expr.(type) {
	case ExprOr:
		return true
	case ExprAnd:
		return containsOr(e.A) || containsOr(e.B)
	case ExprNot:
		return containsOr(e.X)
	default:
		return false
	}
}
