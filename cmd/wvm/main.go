// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/wvm/cpu"
	"github.com/ezrec/wvm/emulator"
	"github.com/ezrec/wvm/io"
	"github.com/ezrec/wvm/translate"
)

// hostFS opens host paths as given on the command line. Unlike os.DirFS,
// absolute paths and ".." are permitted.
type hostFS struct{}

func (hostFS) Open(name string) (fs.File, error) {
	return os.Open(filepath.FromSlash(name))
}

func main() {
	var compile string
	var save bool
	var output string
	var disasm bool
	var verbose bool
	var legacy bool
	var big_endian bool
	var lang string

	flag.StringVar(&compile, "c", "", "assembly file to compile")
	flag.BoolVar(&save, "s", false, "Save compiled image, do not execute")
	flag.StringVar(&output, "o", "-", "Image output for -s")
	flag.BoolVar(&disasm, "d", false, "Disassemble images, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&legacy, "legacy-sext", false, "Use the legacy partial sign extension")
	flag.BoolVar(&big_endian, "big-endian", false, "Images are big endian")
	flag.StringVar(&lang, "lang", "", "Message language, as a BCP 47 tag")

	flag.Parse()

	if len(lang) != 0 {
		translate.SetLocale(lang)
	}

	if len(compile) == 0 && flag.NArg() == 0 {
		log.Fatalf("%v: Nothing to do", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.LegacySignExtend = legacy
	if big_endian {
		emu.ByteOrder = binary.BigEndian
	}

	run := &runner{
		Emulator:    emu,
		FS:          hostFS{},
		Output:      os.Stdout,
		Disassemble: disasm,
	}

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if save {
			if output == "-" {
				err = io.WriteImage(os.Stdout, prog.Binary(), emu.ByteOrder)
			} else {
				dir, name := filepath.Split(output)
				err = io.WriteImageFile(io.DirFS(dir), name, prog.Binary(), emu.ByteOrder)
			}
			if err != nil {
				log.Fatal(err)
			}
			return
		}

		err = emu.LoadProgram(prog)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		fmt.Printf("*** %v\n", compile)
		err = emu.Run()
		if err != nil {
			log.Fatal(err)
		}
		run.PrintRegisters()
	}

	if run.Images(flag.Args()) {
		os.Exit(1)
	}
}
