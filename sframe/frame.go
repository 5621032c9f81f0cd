package sframe

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/tfunc"
	"github.com/npillmayer/tfunc/corelang"
	"github.com/npillmayer/tfunc/evaluator"
)

// Delimiter is the closing token a frame waits for.
type Delimiter int8

// Frames either close on `)`, on `|` or without any token.
const (
	NoDelimiter Delimiter = iota
	Paren
	Bar
)

func (d Delimiter) String() string {
	switch d {
	case Paren:
		return ")"
	case Bar:
		return "|"
	}
	return ""
}

// pending is an operator on the operator stack, together with its position
// in the input.
type pending struct {
	op  *corelang.Descriptor
	col int
}

// Frame is a nesting level of an expression.
//
// A frame counts the operands it has received and the operands it requires.
// A fresh frame requires a single operand; every pending operator of arity k
// adds k-1 to the requirement. Reducing an operator of arity k removes k-1
// from both counts.
type Frame struct {
	Parent      *Frame
	Opener      string               // "(", "|" or a function name; empty for the outermost frame
	Col         int                  // position of the opening token
	Awaits      Delimiter            // closing delimiter, if any
	Function    *corelang.Descriptor // non-nil for function frames
	PrevOperand bool                 // did the previous token deliver an operand to this frame?
	Swap        *PendingSwap         // swap with this frame as the trig frame
	Insertion   *PendingSwap         // swap with this frame receiving the trig result
	operands    *arraystack.Stack    // of *evaluator.Node
	operators   *arraystack.Stack    // of pending
	received    int
	required    int
}

func newFrame(parent *Frame, opener string, col int, awaits Delimiter, fn *corelang.Descriptor) *Frame {
	f := &Frame{
		Parent:    parent,
		Opener:    opener,
		Col:       col,
		Awaits:    awaits,
		Function:  fn,
		operands:  arraystack.New(),
		operators: arraystack.New(),
		required:  1,
	}
	if fn != nil {
		f.pushOp(fn, col)
	}
	return f
}

func (f *Frame) String() string {
	if f.Opener == "" {
		return "⟨top⟩"
	}
	return "⟨" + f.Opener + "⟩"
}

// IsFunctionFrame is a predicate: has f been opened by a function?
func (f *Frame) IsFunctionFrame() bool {
	return f.Function != nil
}

// IsTrigFrame is a predicate: has f been opened by a trigonometric function?
func (f *Frame) IsTrigFrame() bool {
	return f.Function != nil && f.Function.IsTrig()
}

// OperandCount returns the number of operands currently on f's operand stack.
func (f *Frame) OperandCount() int {
	return f.operands.Size()
}

// Received returns the number of operands f has received, net of reductions.
func (f *Frame) Received() int {
	return f.received
}

// Required returns the aggregate number of operands f requires.
func (f *Frame) Required() int {
	return f.required
}

// Satisfied is a predicate: has f received all the operands it requires?
func (f *Frame) Satisfied() bool {
	return f.received >= f.required
}

// PushBase puts a log base onto f. It does not count as a previous operand,
// so the argument following it will not be multiplied with it.
func (f *Frame) PushBase(n *evaluator.Node) {
	f.push(n)
}

func (f *Frame) push(n *evaluator.Node) {
	f.operands.Push(n)
	f.received++
}

// insertBelowTop places n beneath the topmost operand.
func (f *Frame) insertBelowTop(n *evaluator.Node) {
	top, ok := f.operands.Pop()
	f.operands.Push(n)
	if ok {
		f.operands.Push(top)
	}
	f.received++
}

func (f *Frame) pushOp(op *corelang.Descriptor, col int) {
	f.operators.Push(pending{op: op, col: col})
	f.required += op.Arity - 1
}

func (f *Frame) topOp() (pending, bool) {
	p, ok := f.operators.Peek()
	if !ok {
		return pending{}, false
	}
	return p.(pending), true
}

// reduceTop folds the topmost operator and its operands into an operation.
func (f *Frame) reduceTop() error {
	p, _ := f.operators.Pop()
	top := p.(pending)
	k := top.op.Arity
	if f.operands.Size() < k {
		tracer().Debugf("%s: %s short of operands", f, top.op)
		return &tfunc.ArityMismatchError{
			Col:      top.col,
			Name:     top.op.Symbol,
			Required: k,
			Supplied: f.operands.Size(),
		}
	}
	var args [2]*evaluator.Node
	for i := k - 1; i >= 0; i-- {
		a, _ := f.operands.Pop()
		args[i] = a.(*evaluator.Node)
	}
	n, err := evaluator.NewOperation(top.op, args[0], args[1])
	if err != nil {
		panic(err) // operand count has been checked
	}
	f.received -= k
	f.required -= k - 1
	f.push(n)
	tracer().P("frame", f.String()).Debugf("reduced %s", n)
	return nil
}

// reduceOrdered reduces pending operators as long as they bind at least as
// tight as op. Exponentiation is right associative, thus a pending `^` is
// kept if op is `^` too. A frame's function is never reduced here.
func (f *Frame) reduceOrdered(op *corelang.Descriptor) error {
	for {
		top, ok := f.topOp()
		if !ok || top.op.IsFunction() {
			return nil
		}
		if op.Tier.BindsTighter(top.op.Tier) {
			return nil
		}
		if top.op.Tier.RightAssociative() && op.Tier.RightAssociative() {
			return nil
		}
		if err := f.reduceTop(); err != nil {
			return err
		}
	}
}

// ReduceAll reduces every pending operator of f, including its function, and
// returns the single remaining operand. f is empty afterwards.
func (f *Frame) ReduceAll() (*evaluator.Node, error) {
	for !f.operators.Empty() {
		if err := f.reduceTop(); err != nil {
			return nil, err
		}
	}
	if f.operands.Size() != 1 {
		name := f.Opener
		if name == "" {
			name = "expression"
		}
		return nil, &tfunc.ArityMismatchError{
			Col:      f.Col,
			Name:     name,
			Required: 1,
			Supplied: f.operands.Size(),
		}
	}
	n, _ := f.operands.Pop()
	f.received = 0
	return n.(*evaluator.Node), nil
}
