package cpu

import (
	"fmt"
)

// CodeOp is the 4-bit operation selector of an instruction.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ADD  = CodeOp(0) // add
	OP_DEC  = CodeOp(1) // dec
	OP_AND  = CodeOp(2) // and
	OP_XOR  = CodeOp(3) // xor
	OP_LOAD = CodeOp(4) // load
	OP_HALT = CodeOp(5) // halt
)

const (
	OP_COUNT = 6 // Number of defined opcodes.

	CODE_HALT = Code(uint16(OP_HALT) << 12) // Canonical halt word.

	IMM_WIDTH = 5 // Width of the immediate field.
	IMM_MIN   = -(1 << (IMM_WIDTH - 1))
	IMM_MAX   = (1 << IMM_WIDTH) - 1
)

// Defined returns true if the opcode has a handler.
func (op CodeOp) Defined() bool {
	return op >= 0 && op < OP_COUNT
}

// Immediate returns true if the opcode takes its second operand from the
// immediate field.
func (op CodeOp) Immediate() bool {
	return op == OP_DEC || op == OP_LOAD
}

// CodeReg is a 3-bit register index.
type CodeReg int

const (
	REG_R0 = CodeReg(0)
	REG_R1 = CodeReg(1)
	REG_R2 = CodeReg(2)
	REG_R3 = CodeReg(3)
	REG_R4 = CodeReg(4)
	REG_R5 = CodeReg(5)
	REG_R6 = CodeReg(6)
	REG_R7 = CodeReg(7)
)

func (reg CodeReg) String() string {
	return fmt.Sprintf("r%d", int(reg))
}

// Code is a single instruction word.
type Code Word

// MakeCodeReg creates a three register instruction.
func MakeCodeReg(op CodeOp, dst, src1, src2 CodeReg) Code {
	return Code((uint16(op)&0xf)<<12 | (uint16(dst)&0x7)<<9 | (uint16(src1)&0x7)<<6 | (uint16(src2) & 0x7))
}

// MakeCodeImm creates a register and immediate instruction. Only the low
// five bits of imm are kept.
func MakeCodeImm(op CodeOp, dst, src1 CodeReg, imm int) Code {
	return Code((uint16(op)&0xf)<<12 | (uint16(dst)&0x7)<<9 | (uint16(src1)&0x7)<<6 | (uint16(imm) & 0x1f))
}

// MakeCodeHalt creates the canonical halt instruction.
func MakeCodeHalt() Code {
	return CODE_HALT
}

// Op returns the opcode field, bits 12-15.
func (code Code) Op() CodeOp {
	return CodeOp((code >> 12) & 0xf)
}

// Dst returns the destination register field, bits 9-11.
func (code Code) Dst() CodeReg {
	return CodeReg((code >> 9) & 0x7)
}

// Src1 returns the first source register field, bits 6-8.
func (code Code) Src1() CodeReg {
	return CodeReg((code >> 6) & 0x7)
}

// Src2 returns the second source register field, bits 0-2.
func (code Code) Src2() CodeReg {
	return CodeReg(code & 0x7)
}

// ImmediateField returns the raw immediate field, bits 0-4.
func (code Code) ImmediateField() Word {
	return Word(code & 0x1f)
}

// Immediate returns the sign extended immediate field.
func (code Code) Immediate() Word {
	return SignExtend(code.ImmediateField(), IMM_WIDTH)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	op := code.Op()

	switch op {
	case OP_ADD, OP_AND, OP_XOR:
		out = fmt.Sprintf("%v %v %v %v", op, code.Dst(), code.Src1(), code.Src2())
	case OP_DEC:
		out = fmt.Sprintf("%v %v %v %d", op, code.Dst(), code.Src1(), code.Immediate().Signed())
	case OP_LOAD:
		out = fmt.Sprintf("%v %v %d", op, code.Dst(), code.Immediate().Signed())
	case OP_HALT:
		if code == CODE_HALT {
			out = op.String()
		} else {
			out = fmt.Sprintf(".word 0x%04x ; %v", uint16(code), op)
		}
	default:
		out = fmt.Sprintf(".word 0x%04x", uint16(code))
	}

	return
}
