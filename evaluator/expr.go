package evaluator

// Expr is a parsed expression of t. It is the opaque handle handed out to
// clients, who may evaluate it for arbitrary values of t, concurrently and in
// any order.
type Expr struct {
	root   *Node
	source string
}

// NewExpr wraps the root of a tree into an expression handle. source is the
// text the tree has been parsed from, if any.
func NewExpr(root *Node, source string) *Expr {
	if root == nil {
		panic("evaluator: expression without root node")
	}
	return &Expr{root: root, source: source}
}

// Evaluate computes the value of the expression at t.
func (e *Expr) Evaluate(t float64) float64 {
	return Evaluate(e.root, t)
}

// Root returns the root node of the expression tree.
func (e *Expr) Root() *Node {
	return e.root
}

// Source returns the text the expression has been parsed from.
func (e *Expr) Source() string {
	return e.source
}

// IsConstant is a predicate: does the expression not depend on t?
func (e *Expr) IsConstant() bool {
	return e.root.IsConstant()
}

// String returns the canonical form of the expression.
func (e *Expr) String() string {
	return e.root.String()
}
