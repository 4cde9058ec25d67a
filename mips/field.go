package mips

import (
	"fmt"
)

// Word is a raw 32-bit instruction word.
type Word uint32

// Op returns the primary opcode, bits 31-26.
func (w Word) Op() uint8 { return uint8((w >> 26) & 0x3f) }

// Rs returns bits 25-21.
func (w Word) Rs() uint8 { return uint8((w >> 21) & 0x1f) }

// Rt returns bits 20-16.
func (w Word) Rt() uint8 { return uint8((w >> 16) & 0x1f) }

// Rd returns bits 15-11.
func (w Word) Rd() uint8 { return uint8((w >> 11) & 0x1f) }

// Sh returns the shift amount, bits 10-6.
func (w Word) Sh() uint8 { return uint8((w >> 6) & 0x1f) }

// Fn returns the function code, bits 5-0.
func (w Word) Fn() uint8 { return uint8(w & 0x3f) }

// Imm returns the 16-bit immediate, bits 15-0.
func (w Word) Imm() int16 { return int16(uint16(w & 0xffff)) }

// Addr returns the 26-bit jump target, bits 25-0.
func (w Word) Addr() uint32 { return uint32(w & 0x03ffffff) }

// Field is a decoded instruction: one of RField, IField or JField.
type Field interface {
	Type() Type
	Opcode() uint8
	Word() Word
	String() string
}

// RField is a register type instruction. Its primary opcode is always 0.
type RField struct {
	Rs, Rt, Rd, Sh, Fn uint8
}

// IField is an immediate type instruction.
type IField struct {
	Op, Rs, Rt uint8
	Imm        int16
}

// JField is a jump type instruction.
type JField struct {
	Op   uint8
	Addr uint32
}

var (
	_ Field = RField{}
	_ Field = IField{}
	_ Field = JField{}
)

func (fd RField) Type() Type    { return TYPE_R }
func (fd RField) Opcode() uint8 { return OP_SPECIAL }

func (fd RField) Word() Word {
	return (Word(fd.Rs&0x1f) << 21) |
		(Word(fd.Rt&0x1f) << 16) |
		(Word(fd.Rd&0x1f) << 11) |
		(Word(fd.Sh&0x1f) << 6) |
		(Word(fd.Fn&0x3f) << 0)
}

// String returns the field tokens in storage order, as accepted by ParseField.
func (fd RField) String() string {
	return fmt.Sprintf("0x%02X 0x%02X 0x%02X 0x%02X 0x%02X 0x%02X",
		OP_SPECIAL, fd.Rs, fd.Rt, fd.Rd, fd.Sh, fd.Fn)
}

func (fd IField) Type() Type    { return TYPE_I }
func (fd IField) Opcode() uint8 { return fd.Op }

func (fd IField) Word() Word {
	return (Word(fd.Op&0x3f) << 26) |
		(Word(fd.Rs&0x1f) << 21) |
		(Word(fd.Rt&0x1f) << 16) |
		(Word(uint16(fd.Imm)) << 0)
}

func (fd IField) String() string {
	return fmt.Sprintf("0x%02X 0x%02X 0x%02X 0x%04X",
		fd.Op, fd.Rs, fd.Rt, uint16(fd.Imm))
}

func (fd JField) Type() Type    { return TYPE_J }
func (fd JField) Opcode() uint8 { return fd.Op }

func (fd JField) Word() Word {
	return (Word(fd.Op&0x3f) << 26) | Word(fd.Addr&0x03ffffff)
}

func (fd JField) String() string {
	return fmt.Sprintf("0x%02X 0x%07X", fd.Op, fd.Addr)
}

// Decode splits a word into its fields. It never fails.
func Decode(w Word) Field {
	op := w.Op()

	switch TypeOf(op) {
	case TYPE_R:
		return RField{Rs: w.Rs(), Rt: w.Rt(), Rd: w.Rd(), Sh: w.Sh(), Fn: w.Fn()}
	case TYPE_J:
		return JField{Op: op, Addr: w.Addr()}
	default:
		return IField{Op: op, Rs: w.Rs(), Rt: w.Rt(), Imm: w.Imm()}
	}
}

// Encode packs a field into a word, masking each component to its width.
func Encode(field Field) Word {
	return field.Word()
}

// fieldWidth is the declared width of each field component.
const (
	widthOp   = 6
	widthReg  = 5
	widthFn   = 6
	widthImm  = 16
	widthAddr = 26
)

// ParseField parses field tokens in storage order: the primary opcode first,
// then "rs rt rd sh fn" (R), "rs rt imm" (I) or "addr" (J).
func ParseField(tokens []string, strict bool) (field Field, err error) {
	if len(tokens) == 0 {
		err = ErrInstructionEmpty
		return
	}

	value := func(token string, signed bool, width int) (v int64) {
		if err != nil {
			return
		}
		if strict && !hasRadixPrefix(token) {
			err = &ErrToken{Token: token, Err: ErrPrefixMissing}
			return
		}
		v, err = ParseValue(token, signed, width)
		return
	}

	op := uint8(value(tokens[0], false, widthOp))
	if err != nil {
		return
	}

	want := map[Type]int{TYPE_R: 6, TYPE_I: 4, TYPE_J: 2}[TypeOf(op)]
	if len(tokens) != want {
		err = ErrFieldCount
		return
	}

	switch TypeOf(op) {
	case TYPE_R:
		fd := RField{
			Rs: uint8(value(tokens[1], false, widthReg)),
			Rt: uint8(value(tokens[2], false, widthReg)),
			Rd: uint8(value(tokens[3], false, widthReg)),
			Sh: uint8(value(tokens[4], false, widthReg)),
			Fn: uint8(value(tokens[5], false, widthFn)),
		}
		field = fd
	case TYPE_I:
		fd := IField{
			Op:  op,
			Rs:  uint8(value(tokens[1], false, widthReg)),
			Rt:  uint8(value(tokens[2], false, widthReg)),
			Imm: int16(value(tokens[3], true, widthImm)),
		}
		field = fd
	case TYPE_J:
		fd := JField{
			Op:   op,
			Addr: uint32(value(tokens[1], false, widthAddr)),
		}
		field = fd
	}

	if err != nil {
		field = nil
	}

	return
}
