package logic

// Program is the ordered list of statements parsed from one input document.
type Program struct {
	Statements []Statement
}

// Statement is one parsed IF/THEN line: a condition expression and the
// outputs it drives. Outputs hold either plain coil names or exactly one
// timer/counter block, never a mix.
type Statement struct {
	Line    int
	Cond    Expr
	Outputs []Output
}

// Diagnostic describes a line that looked like a logic statement but could
// not be parsed. Such lines contribute nothing to the generated document.
type Diagnostic struct {
	Line int
	Text string
	Err  error
}

// Expr AST

type Expr interface{ isExpr() }

type ExprVar struct{ Name string }

func (ExprVar) isExpr() {}

type ExprCmp struct {
	Left  string
	Op    string
	Right string
}

func (ExprCmp) isExpr() {}

type ExprNot struct{ X Expr }

func (ExprNot) isExpr() {}

type ExprAnd struct{ A, B Expr }

func (ExprAnd) isExpr() {}

type ExprOr struct{ A, B Expr }

func (ExprOr) isExpr() {}

// ExprTimer is a TON/TOF block. Param keeps its unit suffix (5s, 100ms).
type ExprTimer struct {
	Type  string
	Name  string
	Param string
}

func (ExprTimer) isExpr() {}

// ExprCounter is a CTU/CTD block with an integer preset.
type ExprCounter struct {
	Type   string
	Name   string
	Preset string
}

func (ExprCounter) isExpr() {}

// Outputs

type Output interface{ isOutput() }

// Coil is a plain named output.
type Coil struct{ Name string }

func (Coil) isOutput() {}

func (ExprTimer) isOutput() {}

func (ExprCounter) isOutput() {}
