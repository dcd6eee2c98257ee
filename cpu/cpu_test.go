package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// loadCodes places codes at the start of memory.
func loadCodes(cpu *Cpu, codes ...Code) {
	for n, code := range codes {
		cpu.Memory.Write(Word(n), Word(code))
	}
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.True(cpu.Running)
	assert.Equal(PC_START, cpu.Register.Pc)

	cpu.Register.R[3] = 0x1234
	cpu.Register.Pc = 0x55
	cpu.Memory.Write(0x10, 0xabcd)
	cpu.Running = false
	cpu.Ticks = 7

	cpu.Reset()
	assert.Equal(RegisterFile{}, cpu.Register)
	assert.Equal(Word(0), cpu.Memory.Read(0x10))
	assert.True(cpu.Running)
	assert.Equal(0, cpu.Ticks)
}

func TestCpuExecute(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		code   Code
		a, b   Word // r1, r2 before
		dst    CodeReg
		result Word
	}){
		{"add", MakeCodeReg(OP_ADD, REG_R3, REG_R1, REG_R2), 5, 7, REG_R3, 12},
		{"add_wrap", MakeCodeReg(OP_ADD, REG_R3, REG_R1, REG_R2), 0xffff, 2, REG_R3, 1},
		{"add_self", MakeCodeReg(OP_ADD, REG_R1, REG_R1, REG_R1), 0x8000, 0, REG_R1, 0},
		{"dec", MakeCodeImm(OP_DEC, REG_R0, REG_R1, 1), 10, 0, REG_R0, 9},
		{"dec_neg", MakeCodeImm(OP_DEC, REG_R0, REG_R1, -16), 10, 0, REG_R0, 26},
		{"dec_wrap", MakeCodeImm(OP_DEC, REG_R4, REG_R1, 15), 3, 0, REG_R4, 0xfff4},
		{"and", MakeCodeReg(OP_AND, REG_R5, REG_R1, REG_R2), 0xf0f0, 0x3c3c, REG_R5, 0x3030},
		{"xor", MakeCodeReg(OP_XOR, REG_R6, REG_R1, REG_R2), 0xf0f0, 0x3c3c, REG_R6, 0xcccc},
		{"load", MakeCodeImm(OP_LOAD, REG_R7, REG_R0, 3), 0, 0, REG_R7, 3},
		{"load_neg", MakeCodeImm(OP_LOAD, REG_R7, REG_R0, -1), 0, 0, REG_R7, 0xffff},
		{"load_min", MakeCodeImm(OP_LOAD, REG_R2, REG_R0, 16), 0, 0, REG_R2, 0xfff0},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Register.R[1] = entry.a
		cpu.Register.R[2] = entry.b

		result, err := cpu.Execute(entry.code)
		assert.NoError(err, entry.name)
		assert.Equal(entry.result, result, entry.name)
		assert.Equal(entry.result, cpu.Register.R[entry.dst], entry.name)
		assert.True(cpu.Running, entry.name)
	}
}

func TestCpuExecuteLoadIgnoresPrior(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	for n := range REGISTER_COUNT {
		cpu.Register.R[n] = 0xa5a5
	}

	_, err := cpu.Execute(MakeCodeImm(OP_LOAD, REG_R4, REG_R7, 7))
	assert.NoError(err)
	assert.Equal(Word(7), cpu.Register.R[4])
}

func TestCpuExecuteHalt(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	for n := range REGISTER_COUNT {
		cpu.Register.R[n] = Word(n * 0x101)
	}
	before := cpu.Register

	result, err := cpu.Execute(CODE_HALT)
	assert.NoError(err)
	assert.Equal(Word(OP_HALT), result)
	assert.False(cpu.Running)
	assert.Equal(before, cpu.Register)
}

func TestCpuExecuteUndefined(t *testing.T) {
	assert := assert.New(t)

	for op := range CodeOp(16) {
		if op.Defined() {
			continue
		}

		cpu := NewCpu()
		for n := range REGISTER_COUNT {
			cpu.Register.R[n] = Word(n + 1)
		}
		before := cpu.Register

		code := Code(uint16(op)<<12 | 0x0fff)
		_, err := cpu.Execute(code)
		assert.ErrorIs(err, ErrOpcodeUndefined, op.String())
		assert.ErrorIs(err, ErrOpcode(code), op.String())
		assert.Equal(before, cpu.Register, op.String())
		assert.True(cpu.Running, op.String())
	}
}

func TestCpuLegacySignExtend(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.LegacySignExtend = true

	_, err := cpu.Execute(MakeCodeImm(OP_DEC, REG_R0, REG_R0, 1))
	assert.NoError(err)
	assert.Equal(Word(0xffff), cpu.Register.R[0])

	_, err = cpu.Execute(MakeCodeImm(OP_LOAD, REG_R1, REG_R0, -1))
	assert.NoError(err)
	assert.Equal(Word(0x1fff), cpu.Register.R[1])

	cpu.LegacySignExtend = false
	_, err = cpu.Execute(MakeCodeImm(OP_LOAD, REG_R1, REG_R0, -1))
	assert.NoError(err)
	assert.Equal(Word(0xffff), cpu.Register.R[1])
}

func TestCpuTick(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	loadCodes(cpu,
		MakeCodeImm(OP_LOAD, REG_R0, REG_R0, 5),
		MakeCodeReg(OP_ADD, REG_R2, REG_R0, REG_R0),
		CODE_HALT,
	)

	assert.NoError(cpu.Tick())
	assert.Equal(Word(1), cpu.Register.Pc)
	assert.Equal(Word(5), cpu.Register.R[0])

	assert.NoError(cpu.Tick())
	assert.Equal(Word(2), cpu.Register.Pc)
	assert.Equal(Word(10), cpu.Register.R[2])

	assert.NoError(cpu.Tick())
	assert.Equal(Word(3), cpu.Register.Pc)
	assert.False(cpu.Running)
	assert.Equal(3, cpu.Ticks)

	assert.ErrorIs(cpu.Tick(), ErrHalted)
	assert.Equal(Word(3), cpu.Register.Pc)
}

func TestCpuTickUndefined(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	loadCodes(cpu,
		Code(0x9abc),
		CODE_HALT,
	)

	assert.NoError(cpu.Tick())
	assert.True(cpu.Running)
	assert.Equal(RegisterFile{Pc: 1}, cpu.Register)

	assert.NoError(cpu.Run())
	assert.False(cpu.Running)
	assert.Equal(RegisterFile{Pc: 2}, cpu.Register)
}

func TestCpuPcMonotonic(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	var codes []Code
	for n := range 100 {
		codes = append(codes, MakeCodeImm(OP_DEC, CodeReg(n%8), CodeReg((n+1)%8), n%32))
	}
	codes = append(codes, CODE_HALT)
	loadCodes(cpu, codes...)

	for cpu.Running {
		pc := cpu.Register.Pc
		assert.NoError(cpu.Tick())
		assert.Equal(pc+1, cpu.Register.Pc)
	}
	assert.Equal(Word(len(codes)), cpu.Register.Pc)
}

func TestCpuPcWrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register.Pc = 0xffff
	cpu.Memory.Write(0xffff, Word(MakeCodeImm(OP_LOAD, REG_R1, REG_R0, 2)))
	cpu.Memory.Write(0x0000, Word(CODE_HALT))

	assert.NoError(cpu.Run())
	assert.Equal(Word(2), cpu.Register.R[1])
	assert.Equal(Word(1), cpu.Register.Pc)
}

func TestCpuDefines(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	defines := map[string]string{}
	for key, value := range cpu.Defines() {
		defines[key] = value
	}

	assert.Equal("0x5000", defines["CODE_HALT"])
	assert.Equal("65536", defines["MEMORY_SIZE"])
	assert.Equal("-16", defines["IMM_MIN"])
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register.R[1] = 0xffff

	text := cpu.String()
	assert.Contains(text, "   r1: FFFF (-1)\n")
	assert.Contains(text, "   pc: 0000 (0)\n")
	assert.Contains(text, "  run: true\n")
}
