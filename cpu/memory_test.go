package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.Equal(MEMORY_SIZE, len(mem))

	mem.Write(0, 0x1234)
	mem.Write(0xffff, 0xabcd)
	assert.Equal(Word(0x1234), mem.Read(0))
	assert.Equal(Word(0xabcd), mem.Read(0xffff))

	mem.Reset()
	assert.Equal(Word(0), mem.Read(0))
	assert.Equal(Word(0), mem.Read(0xffff))
}

func TestMemoryLoad(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	count := mem.Load([]Word{1, 2, 3})
	assert.Equal(3, count)
	assert.Equal(Word(1), mem.Read(0))
	assert.Equal(Word(3), mem.Read(2))
	assert.Equal(Word(0), mem.Read(3))

	big := make([]Word, MEMORY_SIZE+10)
	assert.Equal(MEMORY_SIZE, mem.Load(big))
}
