package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and generated instructions.
type Opcode struct {
	LineNo int
	Pc     int
	Words  []string
	Codes  []Code
}

// Program is an assembled instruction listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates a single code within a Program.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode that generated the code at pc, if any.
func (prog *Program) Debug(pc Word) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(pc) >= op.Pc && int(pc) < op.Pc+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(pc) - op.Pc,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []Word) {
	for _, code := range prog.Codes() {
		bins = append(bins, Word(code))
	}

	return
}

// Codes iterates over every code in the program, with its address.
func (prog *Program) Codes() iter.Seq2[Word, Code] {
	return func(yield func(pc Word, code Code) bool) {
		for _, op := range prog.Opcodes {
			pc := Word(op.Pc)
			for n, code := range op.Codes {
				if !yield(pc+Word(n), code) {
					return
				}
			}
		}
	}
}
