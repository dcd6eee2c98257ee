// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	goio "io"
	"io/fs"
	"log"

	"github.com/ezrec/wvm/cpu"
	"github.com/ezrec/wvm/emulator"
	"github.com/ezrec/wvm/io"
)

// runner executes or disassembles a list of image files.
type runner struct {
	*emulator.Emulator
	FS          fs.FS       // Source of image files.
	Output      goio.Writer // Listing and register dumps.
	Disassemble bool        // If set, images are listed and not run.
}

// PrintRegisters dumps r0-r7 and pc as signed values.
func (run *runner) PrintRegisters() {
	for n, value := range run.Registers() {
		name := cpu.CodeReg(n).String()
		if n == cpu.REGISTER_COUNT {
			name = "pc"
		}
		fmt.Fprintf(run.Output, "% 5s: %d\n", name, value)
	}
}

// disassemble lists the named image, one word per line.
func (run *runner) disassemble(name string) (err error) {
	words, err := io.ReadImageFile(run.FS, name, run.ByteOrder)
	if err != nil {
		return
	}

	for pc, word := range words {
		fmt.Fprintf(run.Output, "%04x: %04X  %v\n", pc, uint16(word), cpu.Code(word))
	}

	return
}

// Images handles each named image in order on a freshly reset machine.
// A failing image is logged, and the remaining images still run.
// Returns true if any image failed.
func (run *runner) Images(names []string) (failed bool) {
	for _, name := range names {
		fmt.Fprintf(run.Output, "*** %v\n", name)

		if run.Disassemble {
			err := run.disassemble(name)
			if err != nil {
				log.Print(err)
				failed = true
			}
			continue
		}

		err := run.LoadFile(run.FS, name)
		if err != nil {
			log.Print(err)
			failed = true
			continue
		}

		err = run.Run()
		if err != nil {
			log.Printf("%v: %v", name, err)
			failed = true
		}

		run.PrintRegisters()
	}

	return
}
