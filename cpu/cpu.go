package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

const (
	PC_START = Word(0) // Program counter after reset.
)

var _cpu_defines = map[string]string{
	"CODE_HALT":      fmt.Sprintf("0x%04x", uint16(CODE_HALT)),
	"MEMORY_SIZE":    fmt.Sprintf("%v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"IMM_MIN":        fmt.Sprintf("%v", IMM_MIN),
	"IMM_MAX":        fmt.Sprintf("%v", IMM_MAX),
}

// Cpu is the simulation context for the word machine.
type Cpu struct {
	Verbose          bool // Set to enable verbose logging.
	LegacySignExtend bool // Set to use the historical partial sign extension.

	Register RegisterFile // Register bank and program counter.
	Memory   Memory       // Main memory.
	Running  bool         // Cleared by the halt instruction.

	Ticks int // CPU ticks counter.
}

// NewCpu creates a new CPU, reset and ready to load.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = cpu.Register.String()
	text += fmt.Sprintf("% 5s: %v\n", "run", cpu.Running)
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Zeros statistics counters.
// - Sets the program counter to PC_START and marks the CPU running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Memory.Reset()
	cpu.Register.Pc = PC_START
	cpu.Running = true
	cpu.Ticks = 0
}

// signExtend applies the configured sign extender.
func (cpu *Cpu) signExtend(value Word, width int) Word {
	if cpu.LegacySignExtend {
		return SignExtendLegacy(value, width)
	}

	return SignExtend(value, width)
}

// immediate returns the sign extended immediate of code.
func (cpu *Cpu) immediate(code Code) Word {
	return cpu.signExtend(code.ImmediateField(), IMM_WIDTH)
}

// FetchCode reads the instruction at the program counter, and advances
// the program counter by one word.
func (cpu *Cpu) FetchCode() (code Code) {
	code = Code(cpu.Memory.Read(cpu.Register.Pc))
	cpu.Register.Pc++

	return
}

// Tick executes a single CPU instruction cycle.
// Undefined opcodes are logged and skipped.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	pc := cpu.Register.Pc
	code := cpu.FetchCode()
	cpu.Ticks += 1

	if cpu.Verbose {
		log.Printf("cpu: %04x: %04X %v", uint16(pc), uint16(code), code)
	}

	_, err = cpu.Execute(code)
	if errors.Is(err, ErrOpcodeUndefined) {
		log.Printf("cpu: %04x: %v", uint16(pc), err)
		err = nil
	}

	return
}

// Run ticks the CPU until it halts.
func (cpu *Cpu) Run() (err error) {
	for cpu.Running {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction, and returns the value
// computed by it.
func (cpu *Cpu) Execute(code Code) (result Word, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	switch code.Op() {
	case OP_ADD:
		result = cpu.doAdd(code)
	case OP_DEC:
		result = cpu.doDec(code)
	case OP_AND:
		result = cpu.doAnd(code)
	case OP_XOR:
		result = cpu.doXor(code)
	case OP_LOAD:
		result = cpu.doLoad(code)
	case OP_HALT:
		result = cpu.doHalt(code)
	default:
		err = ErrOpcodeUndefined
		return
	}

	return
}

// operands returns the two source register values of code.
func (cpu *Cpu) operands(code Code) (a, b Word) {
	a = cpu.Register.R[code.Src1()]
	b = cpu.Register.R[code.Src2()]

	if cpu.Verbose {
		log.Printf("cpu:   %v = %d, %v = %d", code.Src1(), a.Signed(), code.Src2(), b.Signed())
	}

	return
}

// writeBack stores the result of code into its destination register.
func (cpu *Cpu) writeBack(code Code, result Word) Word {
	cpu.Register.R[code.Dst()] = result

	if cpu.Verbose {
		log.Printf("cpu:   %v <- %d", code.Dst(), result.Signed())
	}

	return result
}

func (cpu *Cpu) doAdd(code Code) Word {
	a, b := cpu.operands(code)
	return cpu.writeBack(code, a+b)
}

func (cpu *Cpu) doDec(code Code) Word {
	a := cpu.Register.R[code.Src1()]
	imm := cpu.immediate(code)

	if cpu.Verbose {
		log.Printf("cpu:   %v = %d, imm = %d", code.Src1(), a.Signed(), imm.Signed())
	}

	return cpu.writeBack(code, a-imm)
}

func (cpu *Cpu) doAnd(code Code) Word {
	a, b := cpu.operands(code)
	return cpu.writeBack(code, a&b)
}

func (cpu *Cpu) doXor(code Code) Word {
	a, b := cpu.operands(code)
	return cpu.writeBack(code, a^b)
}

func (cpu *Cpu) doLoad(code Code) Word {
	return cpu.writeBack(code, cpu.immediate(code))
}

// doHalt stops the CPU. No register is written.
func (cpu *Cpu) doHalt(code Code) Word {
	cpu.Running = false

	if cpu.Verbose {
		log.Printf("cpu: halted")
	}

	return Word(code.Op())
}
