package sframe

import "fmt"

// SwapStage tells which value a PendingSwap waits for.
type SwapStage int8

// A swap first waits for the exponent, then for the value of the trig
// function.
const (
	AwaitingExponent SwapStage = iota
	AwaitingResult
)

// PendingSwap redirects values from a trig function frame to its enclosing
// frame. For input
//
//     sin^2 t
//
// `^` is pushed onto the enclosing frame (Parent) and a swap is armed. The
// next operand delivered to the trig frame (Child), i.e. the 2, is pushed onto
// Parent instead. When Child closes, its value is inserted beneath the
// exponent, resulting in (sin t)^2.
type PendingSwap struct {
	Parent *Frame
	Child  *Frame
	Col    int // position of the `^`
	stage  SwapStage
}

// Stage returns the value s currently waits for.
func (s *PendingSwap) Stage() SwapStage {
	return s.stage
}

// AwaitsExponent is a predicate: is the exponent still missing?
func (s *PendingSwap) AwaitsExponent() bool {
	return s.stage == AwaitingExponent
}

func (s *PendingSwap) String() string {
	stage := "exponent"
	if s.stage == AwaitingResult {
		stage = "result"
	}
	return fmt.Sprintf("swap[%s→%s awaiting %s]", s.Child, s.Parent, stage)
}

// release detaches s from both frames.
func (s *PendingSwap) release() {
	s.Parent.Insertion = nil
	s.Child.Swap = nil
}
