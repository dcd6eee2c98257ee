package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	for op := range 16 {
		f.Add(uint16(op<<12), uint16(0), uint16(0), false)
		f.Add(uint16(op<<12)|0x0fff, uint16(0xffff), uint16(0x8000), true)
	}

	f.Fuzz(func(t *testing.T, word uint16, a uint16, b uint16, legacy bool) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.LegacySignExtend = legacy
		for n := range REGISTER_COUNT {
			if n%2 == 0 {
				cpu.Register.R[n] = Word(a) + Word(n)
			} else {
				cpu.Register.R[n] = Word(b) ^ Word(n)
			}
		}
		cpu.Register.Pc = 0x1ab
		cpu.Memory.Write(0x1ab, Word(word))

		code := Code(word)
		before := cpu.Register
		src1 := before.R[code.Src1()]
		src2 := before.R[code.Src2()]

		imm := SignExtend(code.ImmediateField(), IMM_WIDTH)
		if legacy {
			imm = SignExtendLegacy(code.ImmediateField(), IMM_WIDTH)
		}

		err := cpu.Tick()
		assert.NoError(err)
		assert.Equal(Word(0x1ac), cpu.Register.Pc)
		assert.Equal(1, cpu.Ticks)

		expect := before
		expect.Pc = 0x1ac

		switch code.Op() {
		case OP_ADD:
			expect.R[code.Dst()] = src1 + src2
		case OP_DEC:
			expect.R[code.Dst()] = src1 - imm
		case OP_AND:
			expect.R[code.Dst()] = src1 & src2
		case OP_XOR:
			expect.R[code.Dst()] = src1 ^ src2
		case OP_LOAD:
			expect.R[code.Dst()] = imm
		}

		assert.Equal(expect, cpu.Register, code.String())
		assert.Equal(code.Op() != OP_HALT, cpu.Running, code.String())
	})
}
