package mips

import (
	"strings"
)

// Type is the instruction type, selected by the primary opcode.
type Type int

//go:generate go tool stringer -linecomment -type=Type
const (
	TYPE_R = Type(0) // R
	TYPE_I = Type(1) // I
	TYPE_J = Type(2) // J
)

// TypeOf returns the instruction type a primary opcode selects.
func TypeOf(op uint8) Type {
	switch op & 0x3f {
	case OP_SPECIAL:
		return TYPE_R
	case 0x02, 0x03:
		return TYPE_J
	default:
		return TYPE_I
	}
}

// Format is the textual operand shape of an operation.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_UNKNOWN   = Format(0)  // unknown
	FORMAT_NONE      = Format(1)  // none
	FORMAT_RD_RS_RT  = Format(2)  // rd,rs,rt
	FORMAT_RD_RT_RS  = Format(3)  // rd,rt,rs
	FORMAT_RD_RT_SH  = Format(4)  // rd,rt,sh
	FORMAT_RS_RT     = Format(5)  // rs,rt
	FORMAT_RD_RS     = Format(6)  // rd,rs
	FORMAT_RS        = Format(7)  // rs
	FORMAT_RD        = Format(8)  // rd
	FORMAT_RT_RS_IMM = Format(9)  // rt,rs,imm
	FORMAT_RT_IMM_RS = Format(10) // rt,imm(rs)
	FORMAT_RS_RT_IMM = Format(11) // rs,rt,imm
	FORMAT_RT_IMM    = Format(12) // rt,imm
	FORMAT_ADDR      = Format(13) // addr
)

// OP_SPECIAL is the primary opcode that defers to the function code table.
const OP_SPECIAL = uint8(0x00)

// Entry describes one tabulated operation.
type Entry struct {
	Mnemonic string
	Format   Format
	Type     Type
	Unsigned bool // Immediate is zero-extended.
}

var opcodeTable = [64]*Entry{
	0x02: {"j", FORMAT_ADDR, TYPE_J, false},
	0x03: {"jal", FORMAT_ADDR, TYPE_J, false},
	0x04: {"beq", FORMAT_RS_RT_IMM, TYPE_I, false},
	0x05: {"bne", FORMAT_RS_RT_IMM, TYPE_I, false},
	0x08: {"addi", FORMAT_RT_RS_IMM, TYPE_I, false},
	0x09: {"addiu", FORMAT_RT_RS_IMM, TYPE_I, false},
	0x0a: {"slti", FORMAT_RT_RS_IMM, TYPE_I, false},
	0x0b: {"sltiu", FORMAT_RT_RS_IMM, TYPE_I, false},
	0x0c: {"andi", FORMAT_RT_RS_IMM, TYPE_I, true},
	0x0d: {"ori", FORMAT_RT_RS_IMM, TYPE_I, true},
	0x0e: {"xori", FORMAT_RT_RS_IMM, TYPE_I, true},
	0x0f: {"lui", FORMAT_RT_IMM, TYPE_I, true},
	0x20: {"lb", FORMAT_RT_IMM_RS, TYPE_I, false},
	0x21: {"lh", FORMAT_RT_IMM_RS, TYPE_I, false},
	0x23: {"lw", FORMAT_RT_IMM_RS, TYPE_I, false},
	0x24: {"lbu", FORMAT_RT_IMM_RS, TYPE_I, false},
	0x25: {"lhu", FORMAT_RT_IMM_RS, TYPE_I, false},
	0x28: {"sb", FORMAT_RT_IMM_RS, TYPE_I, false},
	0x29: {"sh", FORMAT_RT_IMM_RS, TYPE_I, false},
	0x2b: {"sw", FORMAT_RT_IMM_RS, TYPE_I, false},
}

var functionTable = [64]*Entry{
	0x00: {"sll", FORMAT_RD_RT_SH, TYPE_R, false},
	0x02: {"srl", FORMAT_RD_RT_SH, TYPE_R, false},
	0x03: {"sra", FORMAT_RD_RT_SH, TYPE_R, false},
	0x04: {"sllv", FORMAT_RD_RT_RS, TYPE_R, false},
	0x06: {"srlv", FORMAT_RD_RT_RS, TYPE_R, false},
	0x07: {"srav", FORMAT_RD_RT_RS, TYPE_R, false},
	0x08: {"jr", FORMAT_RS, TYPE_R, false},
	0x09: {"jalr", FORMAT_RD_RS, TYPE_R, false},
	0x0c: {"syscall", FORMAT_NONE, TYPE_R, false},
	0x0d: {"break", FORMAT_NONE, TYPE_R, false},
	0x10: {"mfhi", FORMAT_RD, TYPE_R, false},
	0x11: {"mthi", FORMAT_RS, TYPE_R, false},
	0x12: {"mflo", FORMAT_RD, TYPE_R, false},
	0x13: {"mtlo", FORMAT_RS, TYPE_R, false},
	0x18: {"mult", FORMAT_RS_RT, TYPE_R, false},
	0x19: {"multu", FORMAT_RS_RT, TYPE_R, false},
	0x1a: {"div", FORMAT_RS_RT, TYPE_R, false},
	0x1b: {"divu", FORMAT_RS_RT, TYPE_R, false},
	0x20: {"add", FORMAT_RD_RS_RT, TYPE_R, false},
	0x21: {"addu", FORMAT_RD_RS_RT, TYPE_R, false},
	0x22: {"sub", FORMAT_RD_RS_RT, TYPE_R, false},
	0x23: {"subu", FORMAT_RD_RS_RT, TYPE_R, false},
	0x24: {"and", FORMAT_RD_RS_RT, TYPE_R, false},
	0x25: {"or", FORMAT_RD_RS_RT, TYPE_R, false},
	0x26: {"xor", FORMAT_RD_RS_RT, TYPE_R, false},
	0x27: {"nor", FORMAT_RD_RS_RT, TYPE_R, false},
	0x2a: {"slt", FORMAT_RD_RS_RT, TYPE_R, false},
	0x2b: {"sltu", FORMAT_RD_RS_RT, TYPE_R, false},
}

// Compact lists of assigned codes, for the mnemonic scan.
var (
	opcodeAssigned   = assigned(&opcodeTable)
	functionAssigned = assigned(&functionTable)
)

func assigned(table *[64]*Entry) (codes []uint8) {
	for code, entry := range table {
		if entry != nil {
			codes = append(codes, uint8(code))
		}
	}
	return
}

// LookupOpcode returns the entry of an I or J type primary opcode.
func LookupOpcode(op uint8) (entry Entry, ok bool) {
	e := opcodeTable[op&0x3f]
	if e == nil {
		return
	}
	return *e, true
}

// LookupFunction returns the entry of an R type function code.
func LookupFunction(fn uint8) (entry Entry, ok bool) {
	e := functionTable[fn&0x3f]
	if e == nil {
		return
	}
	return *e, true
}

// Lookup returns the entry that describes a decoded field.
func Lookup(field Field) (entry Entry, ok bool) {
	switch fd := field.(type) {
	case RField:
		return LookupFunction(fd.Fn)
	case IField:
		return LookupOpcode(fd.Op)
	case JField:
		return LookupOpcode(fd.Op)
	}
	return
}

// LookupMnemonic finds a mnemonic, returning its entry and its primary opcode
// (I and J types) or function code (R type).
func LookupMnemonic(mnemonic string) (entry Entry, code uint8, ok bool) {
	mnemonic = strings.ToLower(mnemonic)

	for _, op := range opcodeAssigned {
		if opcodeTable[op].Mnemonic == mnemonic {
			return *opcodeTable[op], op, true
		}
	}

	for _, fn := range functionAssigned {
		if functionTable[fn].Mnemonic == mnemonic {
			return *functionTable[fn], fn, true
		}
	}

	return
}

// Mnemonics returns every tabulated mnemonic, primary opcodes first.
func Mnemonics() (mnemonics []string) {
	for _, op := range opcodeAssigned {
		mnemonics = append(mnemonics, opcodeTable[op].Mnemonic)
	}
	for _, fn := range functionAssigned {
		mnemonics = append(mnemonics, functionTable[fn].Mnemonic)
	}
	return
}
