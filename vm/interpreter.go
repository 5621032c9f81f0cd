package vm

import (
	"errors"
)

// ErrNoProgramToExecute flags a missing program.
var ErrNoProgramToExecute error = errors.New("no program to execute")

// Run executes prog for a value of t and returns the result.
// Every run uses a stack of its own, thus prog may be run concurrently.
func (prog *Program) Run(t float64) float64 {
	return prog.exec(t, make([]float64, prog.depth))
}

// exec is the fetch-decode-execute loop. stack must be large enough to hold
// prog.depth values.
func (prog *Program) exec(t float64, stack []float64) float64 {
	sp := -1
	for _, op := range prog.code {
		switch op.opcode {
		case OpConst:
			sp++
			stack[sp] = op.f
		case OpVar:
			sp++
			stack[sp] = t
		case OpCall1:
			stack[sp] = op.fn.Call(stack[sp], 0)
		case OpCall2:
			stack[sp-1] = op.fn.Call(stack[sp-1], stack[sp])
			sp--
		case OpNop:
		default:
			panic("vm: cannot execute " + op.String())
		}
	}
	return stack[0]
}
