package mips

import (
	"errors"

	"github.com/ezrec/mipsu/translate"
)

var f = translate.From

var (
	// Error classes
	ErrSyntax   = errors.New(f("syntax error"))
	ErrSemantic = errors.New(f("semantic error"))
	ErrRange    = errors.New(f("range error"))
)

// ErrKind is a specific error that belongs to one of the error classes.
type ErrKind struct {
	Class error
	Text  string
}

func (err *ErrKind) Error() string {
	return err.Text
}

func (err *ErrKind) Unwrap() error {
	return err.Class
}

func kind(class error, text string) *ErrKind {
	return &ErrKind{Class: class, Text: f(text)}
}

var (
	// Literal syntax errors
	ErrBadDecimal    = kind(ErrSyntax, "bad decimal")
	ErrBadRadix      = kind(ErrSyntax, "bad radix")
	ErrHexShort      = kind(ErrSyntax, "too few hex digits")
	ErrHexLong       = kind(ErrSyntax, "too many hex digits")
	ErrHexDigit      = kind(ErrSyntax, "bad hex digit")
	ErrBinShort      = kind(ErrSyntax, "too few binary digits")
	ErrBinLong       = kind(ErrSyntax, "too many binary digits")
	ErrBinDigit      = kind(ErrSyntax, "bad binary digit")
	ErrPrefixMissing = kind(ErrSyntax, "radix prefix missing")
	ErrExpression    = kind(ErrSyntax, "bad expression")

	// Literal range errors
	ErrRangeSign     = kind(ErrRange, "negative value for unsigned field")
	ErrRangeOverflow = kind(ErrRange, "value out of range")

	// Lookup errors
	ErrBadOp            = kind(ErrSemantic, "unknown mnemonic")
	ErrBadRegister      = kind(ErrSemantic, "unknown register")
	ErrRegisterPrefix   = kind(ErrSemantic, "register needs '$'")
	ErrBadOperandFormat = kind(ErrSemantic, "wrong operand count")
	ErrFieldCount       = kind(ErrSemantic, "wrong field count")
	ErrInstructionEmpty = kind(ErrSemantic, "instruction empty")
)

// ErrToken names the token that caused an error.
type ErrToken struct {
	Token string
	Err   error
}

func (err *ErrToken) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrUnknownInstruction reports a word whose opcode or function code is not
// tabulated.
type ErrUnknownInstruction Word

func (err ErrUnknownInstruction) Error() string {
	return f("unknown instruction 0x%08X", uint32(err))
}
