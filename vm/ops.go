package vm

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/tfunc/corelang"
)

// OpCode is an instruction of the stack machine.
type OpCode uint16

// Instructions:
//
//     CONST ⟪f64⟫ : put a float constant onto the stack
//     VAR         : put t onto the stack
//     CALL1 ⟪fn⟫  : replace TOS by fn(TOS)
//     CALL2 ⟪fn⟫  : replace OS and TOS by fn(OS, TOS)
//
const (
	OpNop OpCode = iota
	OpConst
	OpVar
	OpCall1
	OpCall2
)

func (code OpCode) String() string {
	switch code {
	case OpNop:
		return "NOP"
	case OpConst:
		return "CONST"
	case OpVar:
		return "VAR"
	case OpCall1:
		return "CALL1"
	case OpCall2:
		return "CALL2"
	}
	return fmt.Sprintf("<illegal opcode %#x>", uint16(code))
}

// Op is an instruction together with its argument.
type Op struct {
	opcode OpCode
	f      float64              // argument of CONST
	fn     *corelang.Descriptor // argument of CALL1 and CALL2
}

// OpCode returns the instruction of op.
func (op Op) OpCode() OpCode {
	return op.opcode
}

func (op Op) String() string {
	switch op.opcode {
	case OpConst:
		return "CONST " + strconv.FormatFloat(op.f, 'g', -1, 64)
	case OpCall1, OpCall2:
		return op.opcode.String() + " " + op.fn.Name
	}
	return op.opcode.String()
}

// effect is the change in stack depth caused by op.
func (op Op) effect() int {
	switch op.opcode {
	case OpConst, OpVar:
		return 1
	case OpCall2:
		return -1
	}
	return 0
}
