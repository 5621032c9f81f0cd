package sframe

import (
	"github.com/npillmayer/tfunc"
	"github.com/npillmayer/tfunc/corelang"
	"github.com/npillmayer/tfunc/evaluator"
)

// FrameStack is the stack of frames of a single parse. Frames are linked to
// their parents, thus the stack is represented by its base and its top.
//
// A FrameStack is not safe for concurrent use; every parse uses its own.
//
type FrameStack struct {
	ScopeBase *Frame
	ScopeTOS  *Frame
}

// NewFrameStack creates a stack holding the outermost frame.
func NewFrameStack() *FrameStack {
	base := newFrame(nil, "", 0, NoDelimiter, nil)
	return &FrameStack{ScopeBase: base, ScopeTOS: base}
}

// Current gets the current frame of a stack (TOS).
func (fs *FrameStack) Current() *Frame {
	if fs.ScopeTOS == nil {
		panic("attempt to access frame from empty stack")
	}
	return fs.ScopeTOS
}

// Outermost gets the frame of the whole expression.
func (fs *FrameStack) Outermost() *Frame {
	if fs.ScopeBase == nil {
		panic("attempt to access outermost frame from empty stack")
	}
	return fs.ScopeBase
}

// Depth returns the number of frames on top of the outermost one.
func (fs *FrameStack) Depth() int {
	d := 0
	for f := fs.ScopeTOS; f != nil && f != fs.ScopeBase; f = f.Parent {
		d++
	}
	return d
}

// PushNewFrame opens a frame as a child of the current one. For function
// frames fn is the function, otherwise nil.
func (fs *FrameStack) PushNewFrame(opener string, col int, awaits Delimiter, fn *corelang.Descriptor) *Frame {
	f := newFrame(fs.Current(), opener, col, awaits, fn)
	fs.ScopeTOS = f
	tracer().P("frame", f.String()).Debugf("open at depth %d", fs.Depth())
	return f
}

// PopFrame pops the top-most (recent) frame.
func (fs *FrameStack) PopFrame() *Frame {
	if fs.ScopeTOS == nil || fs.ScopeTOS == fs.ScopeBase {
		panic("attempt to pop outermost frame")
	}
	f := fs.ScopeTOS
	fs.ScopeTOS = f.Parent
	tracer().P("frame", f.String()).Debugf("close")
	return f
}

// PushOperand delivers an operand to the current frame. If the frame has
// already received an operand as the previous token, a multiplication is
// inserted first. If a trig frame waits for an exponent, the operand is
// redirected to the enclosing frame. Function frames which are satisfied
// afterwards are closed.
func (fs *FrameStack) PushOperand(n *evaluator.Node, col int) error {
	f := fs.Current()
	if sw := f.Swap; sw != nil && sw.AwaitsExponent() {
		sw.Parent.push(n)
		sw.stage = AwaitingResult
		tracer().Debugf("%s: exponent %s redirected", sw, n)
		return nil
	}
	if f.PrevOperand {
		tracer().P("frame", f.String()).Debugf("implicit multiplication")
		if err := fs.pushOperator(f, corelang.Mul, col); err != nil {
			return err
		}
	}
	f.push(n)
	f.PrevOperand = true
	return fs.autoClose()
}

// PushOperator puts a binary operator onto the current frame, after reducing
// every pending operator binding at least as tight.
func (fs *FrameStack) PushOperator(op *corelang.Descriptor, col int) error {
	return fs.pushOperator(fs.Current(), op, col)
}

func (fs *FrameStack) pushOperator(f *Frame, op *corelang.Descriptor, col int) error {
	if err := f.reduceOrdered(op); err != nil {
		return err
	}
	f.pushOp(op, col)
	f.PrevOperand = false
	return nil
}

// PushSign treats op (`-` or `+`) as a unary sign: a zero is pushed as the left
// operand, followed by the sign operator of op. Pending operators are not
// reduced. Signs bind tighter than products, so the sign applies to the
// operand following it, including any exponent of that operand.
func (fs *FrameStack) PushSign(op *corelang.Descriptor, col int) {
	sign := corelang.SignOf(op)
	if sign == nil {
		panic("not a sign: " + op.Symbol)
	}
	f := fs.Current()
	f.push(evaluator.NewConstant(0))
	f.pushOp(sign, col)
	f.PrevOperand = false
}

// ArmSwap handles `^` directly following a trig function: the exponent
// operator is pushed onto the enclosing frame and a PendingSwap connects
// both frames. The current frame has to be a trig frame without operands.
func (fs *FrameStack) ArmSwap(col int) (*PendingSwap, error) {
	c := fs.Current()
	if !c.IsTrigFrame() || c.OperandCount() > 0 || c.Swap != nil {
		return nil, &tfunc.ArityMismatchError{Col: col, Name: corelang.Exp.Symbol, Required: 2, Supplied: 0}
	}
	p := c.Parent
	if p.PrevOperand {
		if err := fs.pushOperator(p, corelang.Mul, c.Col); err != nil {
			return nil, err
		}
	}
	if err := fs.pushOperator(p, corelang.Exp, col); err != nil {
		return nil, err
	}
	sw := &PendingSwap{Parent: p, Child: c, Col: col}
	p.Insertion, c.Swap = sw, sw
	tracer().Debugf("%s armed", sw)
	return sw, nil
}

// CloseFrame reduces the current frame and delivers its value to the
// enclosing frame. The value of a `|` frame is wrapped into abs.
func (fs *FrameStack) CloseFrame() error {
	f := fs.Current()
	if f == fs.ScopeBase {
		panic("attempt to close outermost frame")
	}
	n, err := f.ReduceAll()
	if err != nil {
		return err
	}
	if f.Awaits == Bar {
		if n, err = evaluator.NewOperation(corelang.Abs, n, nil); err != nil {
			panic(err)
		}
	}
	fs.PopFrame()
	if sw := f.Swap; sw != nil {
		if sw.AwaitsExponent() {
			return &tfunc.ArityMismatchError{Col: sw.Col, Name: corelang.Exp.Symbol, Required: 2, Supplied: 1}
		}
		sw.Parent.insertBelowTop(n)
		sw.Parent.PrevOperand = true
		sw.release()
		tracer().Debugf("trig value %s inserted", n)
		return fs.autoClose()
	}
	return fs.PushOperand(n, f.Col)
}

// autoClose closes the current frame if it is a satisfied function frame.
// Closing it delivers an operand to the parent, which may cascade.
func (fs *FrameStack) autoClose() error {
	f := fs.Current()
	if f.IsFunctionFrame() && f.Insertion == nil && f.Satisfied() {
		return fs.CloseFrame()
	}
	return nil
}

// Result reduces the outermost frame and returns the root of the expression
// tree. All other frames must have been closed before.
func (fs *FrameStack) Result() (*evaluator.Node, error) {
	if fs.ScopeTOS != fs.ScopeBase {
		panic("attempt to reduce outermost frame with frames still open")
	}
	return fs.ScopeBase.ReduceAll()
}
