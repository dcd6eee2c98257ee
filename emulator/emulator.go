// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"encoding/binary"
	"fmt"
	"io/fs"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/wvm/cpu"
	"github.com/ezrec/wvm/internal"
	"github.com/ezrec/wvm/io"
	"github.com/ezrec/wvm/translate"
)

var (
	ErrAddressSpaceExhausted = translate.NewError("address space exhausted")
	ErrProgramMissing        = translate.NewError("program missing")
)

var _emulator_defines = map[string]string{
	"PC_START":  fmt.Sprintf("%v", cpu.PC_START),
	"WORD_BITS": fmt.Sprintf("%v", cpu.WORD_BITS),
}

// Emulator state. CPU + loaded program.
type Emulator struct {
	Verbose   bool             // If set, enables verbose logging.
	*cpu.Cpu                   // Reference to the CPU simulation.
	Program   *cpu.Program     // Reference to the currently loaded program listing, if any.
	ByteOrder binary.ByteOrder // Byte order of image files.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:       cpu.NewCpu(),
		Program:   &cpu.Program{},
		ByteOrder: io.DefaultByteOrder,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset clears memory and registers, and readies the CPU to run.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// LoadImage resets the emulator and places words at the start of memory.
// A canonical halt is appended unless the image already ends with one.
// Any previously loaded program listing is dropped.
func (emu *Emulator) LoadImage(words []cpu.Word) (err error) {
	emu.Reset()
	emu.Program = &cpu.Program{}

	halt := cpu.Word(cpu.CODE_HALT)

	count := len(words)
	needs_halt := count == 0 || words[count-1] != halt
	if needs_halt {
		count++
	}

	if count > cpu.MEMORY_SIZE {
		err = io.ErrImageTooLarge
		return
	}

	emu.Cpu.Memory.Load(words)
	if needs_halt {
		emu.Cpu.Memory.Write(cpu.Word(len(words)), halt)
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d words, halt appended: %v", len(words), needs_halt)
	}

	return
}

// LoadProgram loads an assembled program.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	if prog == nil {
		err = ErrProgramMissing
		return
	}

	err = emu.LoadImage(prog.Binary())
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// LoadFile loads the named image file from fsys.
func (emu *Emulator) LoadFile(fsys fs.FS, name string) (err error) {
	words, err := io.ReadImageFile(fsys, name, emu.ByteOrder)
	if err != nil {
		return
	}

	err = emu.LoadImage(words)
	if err != nil {
		err = &io.ErrImage{Name: name, Err: err}
		return
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Register.Pc)
}

// Halted returns true once the halt instruction has executed.
func (emu *Emulator) Halted() bool {
	return !emu.Cpu.Running
}

// Registers returns r0-r7 and pc as signed values.
func (emu *Emulator) Registers() [cpu.REGISTER_COUNT + 1]int16 {
	return emu.Cpu.Register.Signed()
}

// Code returns the instruction at the program counter.
func (emu *Emulator) Code() cpu.Code {
	return cpu.Code(emu.Cpu.Memory.Read(emu.Cpu.Register.Pc))
}

// LineNo returns the source line number of the instruction at the
// program counter, or 0 if the program has no listing.
func (emu *Emulator) LineNo() int {
	return emu.lineNoAt(emu.Cpu.Register.Pc)
}

// lineNoAt returns the source line number of the instruction at pc.
func (emu *Emulator) lineNoAt(pc cpu.Word) int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Register.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: uint16(pc), LineNo: emu.lineNoAt(pc), Err: err}
		}
	}()

	if emu.Halted() {
		done = true
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	if emu.Halted() {
		done = true
		return
	}

	// Wrapped past the top of memory without a halt.
	if emu.Cpu.Register.Pc == cpu.PC_START && pc == cpu.MEMORY_SIZE-1 {
		done = true
		err = ErrAddressSpaceExhausted
		return
	}

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
