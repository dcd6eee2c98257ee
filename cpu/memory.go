package cpu

const (
	MEMORY_SIZE = 1 << WORD_BITS // Words of memory; the whole address space.
)

// Memory is the flat word addressable store. Any Word is a valid address.
type Memory [MEMORY_SIZE]Word

// Read returns the word at address.
func (mem *Memory) Read(address Word) Word {
	return mem[address]
}

// Write stores value at address.
func (mem *Memory) Write(address Word, value Word) {
	mem[address] = value
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}

// Load copies words into memory starting at address 0, and returns the
// number of words copied. Words beyond the end of memory are dropped.
func (mem *Memory) Load(words []Word) int {
	return copy(mem[:], words)
}
