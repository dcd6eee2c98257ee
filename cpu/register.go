package cpu

import (
	"fmt"
)

const (
	REGISTER_COUNT = 8 // General purpose registers r0-r7.
)

// RegisterFile holds the general purpose registers and the program counter.
type RegisterFile struct {
	R  [REGISTER_COUNT]Word // General purpose registers.
	Pc Word                 // Program counter.
}

// Reset zeros all registers, including the program counter.
func (rf *RegisterFile) Reset() {
	clear(rf.R[:])
	rf.Pc = 0
}

// Signed returns r0-r7 followed by pc, as signed values.
func (rf *RegisterFile) Signed() (regs [REGISTER_COUNT + 1]int16) {
	for n, value := range rf.R {
		regs[n] = value.Signed()
	}
	regs[REGISTER_COUNT] = rf.Pc.Signed()

	return
}

// String returns the register file contents, one register per line.
func (rf *RegisterFile) String() (text string) {
	for n, value := range rf.R {
		text += fmt.Sprintf("% 5s: %04X (%d)\n", CodeReg(n), uint16(value), value.Signed())
	}
	text += fmt.Sprintf("% 5s: %04X (%d)\n", "pc", uint16(rf.Pc), rf.Pc.Signed())

	return
}
