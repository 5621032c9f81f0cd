package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tfunc/corelang"
)

// String renders the tree rooted at n in a canonical textual form. Parsing
// the canonical form yields a tree which evaluates identically.
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	switch n.kind {
	case KindConstant:
		formatConstant(b, n.value)
	case KindVariable:
		b.WriteByte('t')
	case KindOperation:
		n.formatOperation(b)
	default:
		panic("evaluator: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// formatConstant writes a constant as a literal the lexer understands.
// Literals are unsigned decimals, everything else has to be computed.
func formatConstant(b *strings.Builder, v float64) {
	switch {
	case math.IsNaN(v):
		b.WriteString("(0/0)")
	case math.IsInf(v, 1):
		b.WriteString("(1/0)")
	case math.IsInf(v, -1):
		b.WriteString("(-1/0)")
	case v == 0 && math.Signbit(v):
		b.WriteString("(0*(-1))")
	case v < 0:
		b.WriteString("(-")
		b.WriteString(strconv.FormatFloat(-v, 'f', -1, 64))
		b.WriteByte(')')
	default:
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
}

func (n *Node) formatOperation(b *strings.Builder) {
	switch op := n.op; {
	case op == corelang.Abs:
		b.WriteString("|(")
		n.left.format(b)
		b.WriteString(")|")
	case op == corelang.Log:
		base := n.left
		if base.IsConstant() && base.value >= 0 && !math.IsInf(base.value, 0) && !math.Signbit(base.value) {
			b.WriteString("log_")
			b.WriteString(strconv.FormatFloat(base.value, 'f', -1, 64))
			b.WriteByte('(')
			n.right.format(b)
			b.WriteByte(')')
			return
		}
		// no literal syntax for a computed base
		b.WriteString("(ln(")
		n.right.format(b)
		b.WriteString(")/ln(")
		base.format(b)
		b.WriteString("))")
	case op.Arity == 1:
		b.WriteString(op.Symbol)
		b.WriteByte('(')
		n.left.format(b)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		n.left.format(b)
		b.WriteString(op.Symbol)
		n.right.format(b)
		b.WriteByte(')')
	}
}
