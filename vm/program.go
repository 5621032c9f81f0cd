package vm

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/tfunc/evaluator"
)

// Program is the compiled form of an expression.
type Program struct {
	code   []Op
	depth  int    // maximum stack depth
	source string // canonical form of the expression
}

// Compile creates a program from an expression.
func Compile(e *evaluator.Expr) *Program {
	prog := &Program{source: e.String()}
	prog.code = emit(e.Root())
	prog.depth = verify(prog.code)
	tracer().Debugf("compiled %s into %d ops, stack depth %d", prog.source, len(prog.code), prog.depth)
	return prog
}

// visit is a node on the traversal stack, with its operands either still to
// be visited or already emitted.
type visit struct {
	node    *evaluator.Node
	visited bool
}

// emit walks the tree post-order, using an explicit stack.
func emit(root *evaluator.Node) []Op {
	code := make([]Op, 0, root.Size())
	stack := linkedliststack.New()
	stack.Push(visit{node: root})
	for !stack.Empty() {
		v, _ := stack.Pop()
		x := v.(visit)
		n := x.node
		switch n.Kind() {
		case evaluator.KindConstant:
			code = append(code, Op{opcode: OpConst, f: n.Value()})
		case evaluator.KindVariable:
			code = append(code, Op{opcode: OpVar})
		case evaluator.KindOperation:
			if x.visited {
				if n.Op().Arity == 1 {
					code = append(code, Op{opcode: OpCall1, fn: n.Op()})
				} else {
					code = append(code, Op{opcode: OpCall2, fn: n.Op()})
				}
				continue
			}
			stack.Push(visit{node: n, visited: true})
			if n.Right() != nil {
				stack.Push(visit{node: n.Right()})
			}
			stack.Push(visit{node: n.Left()})
		default:
			panic("vm: cannot compile node of kind " + n.Kind().String())
		}
	}
	return code
}

// verify checks that code leaves exactly one value on the stack and never
// pops from an empty stack. It returns the maximum stack depth.
func verify(code []Op) int {
	depth, deepest := 0, 0
	for i, op := range code {
		if op.opcode == OpCall1 && depth < 1 || op.opcode == OpCall2 && depth < 2 {
			panic("vm: stack underflow at op " + op.String() + " #" + strconv.Itoa(i))
		}
		depth += op.effect()
		if depth > deepest {
			deepest = depth
		}
	}
	if depth != 1 {
		panic("vm: program leaves " + strconv.Itoa(depth) + " values on the stack")
	}
	return deepest
}

// Len returns the number of instructions of prog.
func (prog *Program) Len() int {
	return len(prog.code)
}

// Depth returns the stack size prog needs to run.
func (prog *Program) Depth() int {
	return prog.depth
}

// Source returns the canonical form of the expression prog has been compiled
// from.
func (prog *Program) Source() string {
	return prog.source
}

// Listing returns the instructions of prog, one per line.
func (prog *Program) Listing() string {
	var b strings.Builder
	for i, op := range prog.code {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(op.String())
	}
	return b.String()
}
