package cpu

// Word is the machine's unit of memory, registers, and instruction encoding.
type Word uint16

const (
	WORD_BITS = 16 // Width of a Word.
)

// SignExtend treats the low width bits of value as a two's-complement
// number and returns it extended to the full Word.
func SignExtend(value Word, width int) Word {
	if width <= 0 || width >= WORD_BITS {
		return value
	}

	if (value>>(width-1))&1 == 1 {
		value |= ^Word(0) << width
	}

	return value
}

// SignExtendLegacy reproduces the historical extender, which only fills
// eight bits above the field. For fields narrower than eight bits the top
// of the word is left clear, so a 5-bit -1 becomes 0x1fff.
func SignExtendLegacy(value Word, width int) Word {
	if width <= 0 || width >= WORD_BITS {
		return value
	}

	if (value>>(width-1))&1 == 1 {
		value |= Word(0xff) << width
	}

	return value
}

// Signed reinterprets the word as a two's-complement value.
func (w Word) Signed() int16 {
	return int16(w)
}
