package evaluator

import (
	"fmt"

	"github.com/npillmayer/tfunc/corelang"
)

// Kind is the variant of a node.
type Kind int8

// Node kinds. The set is closed.
const (
	KindNone Kind = iota
	KindConstant
	KindVariable  // denotes t
	KindOperation // operator or function applied to 1 or 2 operands
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindOperation:
		return "operation"
	}
	return fmt.Sprintf("<illegal kind: %d>", k)
}

// Node is a node in the abstract syntax tree of an expression.
// Nodes are immutable; an operation exclusively owns its operand sub-trees.
type Node struct {
	kind  Kind
	value float64              // for constants
	op    *corelang.Descriptor // for operations
	left  *Node                // first operand of an operation
	right *Node                // second operand of a binary operation, else nil
}

// NewConstant creates a constant node.
func NewConstant(v float64) *Node {
	return &Node{kind: KindConstant, value: v}
}

// NewVariable creates a node denoting t.
func NewVariable() *Node {
	return &Node{kind: KindVariable}
}

// NewOperation creates an operation node applying op to its operands.
// right must be nil exactly if op is unary. If all operands are constants,
// the operation is folded and the result is a constant node.
func NewOperation(op *corelang.Descriptor, left, right *Node) (*Node, error) {
	if op == nil {
		return nil, fmt.Errorf("operation without operator")
	}
	supplied := 0
	if left != nil {
		supplied++
	}
	if right != nil {
		supplied++
	}
	if left == nil && right != nil || supplied != op.Arity {
		return nil, fmt.Errorf("%s requires %d operand(s), has %d", op, op.Arity, supplied)
	}
	if left.IsConstant() && (right == nil || right.IsConstant()) {
		var b float64
		if right != nil {
			b = right.value
		}
		c := NewConstant(op.Call(left.value, b))
		tracer().Debugf("folded %s into %g", op.Name, c.value)
		return c, nil
	}
	return &Node{kind: KindOperation, op: op, left: left, right: right}, nil
}

// Kind returns the variant of n.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsConstant is a predicate: is n a constant node?
func (n *Node) IsConstant() bool {
	return n != nil && n.kind == KindConstant
}

// Value returns the value of a constant node and 0 for all other kinds.
func (n *Node) Value() float64 {
	return n.value
}

// Op returns the operator of an operation node, nil otherwise.
func (n *Node) Op() *corelang.Descriptor {
	return n.op
}

// Left returns the first operand of an operation node.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the second operand of a binary operation node.
func (n *Node) Right() *Node {
	return n.right
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Size() + n.right.Size()
}

// Evaluate computes the value of the tree rooted at n for a given t.
// Numeric anomalies (division by zero, arguments outside a function's
// domain) propagate as infinities or NaN.
func Evaluate(n *Node, t float64) float64 {
	switch n.kind {
	case KindConstant:
		return n.value
	case KindVariable:
		return t
	case KindOperation:
		a := Evaluate(n.left, t)
		if n.op.Arity == 1 {
			return n.op.Call(a, 0)
		}
		return n.op.Call(a, Evaluate(n.right, t))
	}
	panic("evaluator: invalid node kind " + n.kind.String())
}
