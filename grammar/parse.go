package grammar

import (
	"github.com/npillmayer/tfunc"
	"github.com/npillmayer/tfunc/corelang"
	"github.com/npillmayer/tfunc/evaluator"
	"github.com/npillmayer/tfunc/sframe"
)

// Parse reads a function of t and returns its expression tree. Errors are
// of the types of package tfunc and carry the position of the offending
// token.
//
// Parse is safe for concurrent use.
func Parse(input string) (*evaluator.Expr, error) {
	tokenizer, err := NewTokenizer(input)
	if err != nil {
		return nil, err
	}
	p := &parser{frames: sframe.NewFrameStack()}
	n := 0
	for {
		tok, ok, err := tokenizer.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		n++
		if err := p.consume(tok); err != nil {
			tracer().Debugf("%s: %v", tok, err)
			return nil, err
		}
	}
	if n == 0 {
		return nil, &tfunc.EmptyInputError{}
	}
	if err := p.checkClosed(); err != nil {
		return nil, err
	}
	root, err := p.frames.Result()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %q as %s", input, root)
	return evaluator.NewExpr(root, input), nil
}

// MustParse is like Parse, but panics on error.
func MustParse(input string) *evaluator.Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	frames *sframe.FrameStack
}

func (p *parser) consume(tok Token) error {
	switch tok.Kind {
	case Number, Constant:
		return p.frames.PushOperand(evaluator.NewConstant(tok.Value), tok.Col)
	case Variable:
		return p.frames.PushOperand(evaluator.NewVariable(), tok.Col)
	case Function:
		f := p.frames.PushNewFrame(tok.Text, tok.Col, sframe.NoDelimiter, tok.Desc)
		if tok.Desc == corelang.Log {
			f.PushBase(evaluator.NewConstant(tok.Value))
		}
		return nil
	case Operator:
		return p.operator(tok)
	case Open:
		p.frames.PushNewFrame("(", tok.Col, sframe.Paren, nil)
		return nil
	case Close:
		return p.closeParen(tok)
	case Bar:
		return p.bar(tok)
	}
	panic("unknown token kind " + tok.Kind.String())
}

// operator handles binary operators, signs, and `^` following a trig
// function.
func (p *parser) operator(tok Token) error {
	f := p.frames.Current()
	if sw := f.Swap; sw != nil && sw.AwaitsExponent() {
		// exponents of trig functions must not be signed
		return &tfunc.ArityMismatchError{Col: sw.Col, Name: corelang.Exp.Symbol, Required: 2, Supplied: 0}
	}
	if f.PrevOperand {
		return p.frames.PushOperator(tok.Desc, tok.Col)
	}
	switch tok.Desc {
	case corelang.Sub, corelang.Add:
		p.frames.PushSign(tok.Desc, tok.Col)
		return nil
	case corelang.Exp:
		if f.IsTrigFrame() && f.OperandCount() == 0 && f.Swap == nil {
			_, err := p.frames.ArmSwap(tok.Col)
			return err
		}
	}
	return &tfunc.ArityMismatchError{Col: tok.Col, Name: tok.Desc.Symbol, Required: 2, Supplied: 0}
}

func (p *parser) closeParen(tok Token) error {
	f := p.frames.Current()
	if f.Awaits == sframe.Paren {
		return p.frames.CloseFrame()
	}
	if ancestor(f, sframe.Paren) == nil {
		return &tfunc.UnmatchedCloseError{Col: tok.Col, Delimiter: tok.Text}
	}
	if f.IsFunctionFrame() {
		return &tfunc.ArityMismatchError{
			Col:      f.Col,
			Name:     f.Function.Symbol,
			Required: f.Function.Arity,
			Supplied: f.OperandCount(),
		}
	}
	return &tfunc.UnmatchedOpenError{Col: f.Col, Opener: f.Opener}
}

// bar closes the current frame if it is a complete absolute value, and opens
// a new absolute value otherwise.
func (p *parser) bar(tok Token) error {
	f := p.frames.Current()
	if f.Awaits == sframe.Bar && f.OperandCount() > 0 && f.Satisfied() {
		return p.frames.CloseFrame()
	}
	p.frames.PushNewFrame(tok.Text, tok.Col, sframe.Bar, nil)
	return nil
}

// checkClosed reports the innermost frame still open at the end of input.
// An empty absolute value inside another one has been opened by a bar meant
// to close the outer one.
func (p *parser) checkClosed() error {
	f := p.frames.Current()
	if f == p.frames.Outermost() {
		return nil
	}
	if f.Awaits == sframe.Bar && f.OperandCount() == 0 && ancestor(f, sframe.Bar) != nil {
		return &tfunc.UnmatchedCloseError{Col: f.Col, Delimiter: f.Opener}
	}
	return &tfunc.UnmatchedOpenError{Col: f.Col, Opener: f.Opener}
}

// ancestor finds the nearest enclosing frame of f awaiting d.
func ancestor(f *sframe.Frame, d sframe.Delimiter) *sframe.Frame {
	for a := f.Parent; a != nil; a = a.Parent {
		if a.Awaits == d {
			return a
		}
	}
	return nil
}
