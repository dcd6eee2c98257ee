// Package cpu implements the processor and assembler for the wvm word machine.
//
// The machine has a 16-bit word, eight 16-bit general-purpose registers
// (r0-r7), a program counter (pc), and a flat memory of 65536 words. Each
// instruction is a single word holding a 4-bit opcode and three register
// fields or a 5-bit signed immediate. There are no branches: the program
// counter only advances by one word per cycle, until a halt executes.
//
// The assembler provides a small assembly language for the instruction set,
// supporting macros, equates, and compile-time expression evaluation.
package cpu
