package cpu

import (
	"github.com/ezrec/wvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = translate.NewError("halted")
	ErrOpcodeUndefined = translate.NewError("opcode undefined")

	// Assembler errors
	ErrEquateSyntax       = translate.NewError(".equ syntax")
	ErrEquateDuplicate    = translate.NewError(".equ duplicated")
	ErrMacroSyntax        = translate.NewError(".macro syntax")
	ErrMacroNesting       = translate.NewError(".macro in .macro prohibited")
	ErrMacroDuplicate     = translate.NewError(".macro duplicated")
	ErrMacroLonely        = translate.NewError(".macro without .endm")
	ErrMacroLonelyEndm    = translate.NewError(".endm without .macro")
	ErrOpcodeExtraArgs    = translate.NewError("excessive arguments")
	ErrOpcodeValueMissing = translate.NewError("value missing")
	ErrRegisterInvalid    = translate.NewError("register invalid")
	ErrImmediateRange     = translate.NewError("immediate out of range")
	ErrWordRange          = translate.NewError("word out of range")
	ErrInstructionInvalid = translate.NewError("instruction invalid")
)

// ErrOpcode reports the instruction that failed to execute.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
