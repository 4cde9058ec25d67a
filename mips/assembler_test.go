package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		line string
		word Word
	}{
		{"add $v0, $a1, $t8", 0x00B81020},
		{"ADD $2,$5,$24", 0x00B81020},
		{"ADD $V0, $A1, $T8", 0x00B81020},
		{"lw $t0, 8($sp)", 0x8FA80008},
		{"lw $t0, 0x0008($sp)", 0x8FA80008},
		{"lw $t0, 8 ( $sp )", 0x8FA80008},
		{"addi $t0, $zero, -1", 0x2008FFFF},
		{"addi $t0, $zero, 0xFFFF", 0x2008FFFF},
		{"addi $t0, $zero, 5", 0x20080005},
		{"ori $t0, $zero, 65535", 0x3408FFFF},
		{"lui $t0, 0x1234", 0x3C081234},
		{"j 0x0000040", 0x08000040},
		{"jal 64", 0x0C000040},
		{"sll $t0, $t1, 4", 0x00094100},
		{"sll $t0, $t1, 0b00100", 0x00094100},
		{"jr $ra", 0x03E00008},
		{"syscall", 0x0000000C},
		{"syscall # trap", 0x0000000C},
		{"nor $t0, $t1, $t2 ; comment", 0x012A4027},
		{".word 0xFC000000", 0xFC000000},
		{".WORD 12", 0x0000000C},
	}

	asm := &Assembler{}
	for _, entry := range table {
		field, err := asm.Assemble(entry.line)
		if assert.NoError(err, entry.line) {
			assert.Equal(entry.word, Encode(field), entry.line)
		}
	}

	field, err := asm.Assemble("add $v0, $a1, $t8")
	assert.NoError(err)
	assert.Equal(RField{Rs: 5, Rt: 24, Rd: 2, Fn: 0x20}, field)

	field, err = asm.AssembleTokens([]string{"add", "$v0", "$a1", "$t8"})
	assert.NoError(err)
	assert.Equal(Decode(0x00B81020), field)
}

func TestAssembleErrors(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		line string
		err  error
	}{
		{"", ErrInstructionEmpty},
		{"   # nothing", ErrInstructionEmpty},
		{"frob $t0", ErrBadOp},
		{"add $v0, $a1", ErrBadOperandFormat},
		{"syscall $t0", ErrBadOperandFormat},
		{"jr", ErrBadOperandFormat},
		{"add $v0, $a1, $t32", ErrBadRegister},
		{"addi $t0, $zero, 65535", ErrRangeOverflow},
		{"ori $t0, $zero, -1", ErrRangeSign},
		{"sll $t0, $t1, 32", ErrRangeOverflow},
		{"j 0x40", ErrHexShort},
		{"addi $t0, $zero, 0x12345", ErrHexLong},
		{"addi $t0, $zero, 012", ErrBadRadix},
		{"addi $t0, $zero, five", ErrBadDecimal},
		{".word", ErrBadOperandFormat},
		{".word 0x0000000C 0x0000000C", ErrBadOperandFormat},
	}

	asm := &Assembler{}
	for _, entry := range table {
		field, err := asm.Assemble(entry.line)
		assert.ErrorIs(err, entry.err, entry.line)
		assert.Nil(field, entry.line)
	}

	_, err := asm.Assemble("add $v0, $a1")
	var terr *ErrToken
	if assert.ErrorAs(err, &terr) {
		assert.Equal("add", terr.Token)
	}
	assert.ErrorIs(err, ErrSemantic)

	_, err = asm.Assemble("add $v0, $a1, $t32")
	if assert.ErrorAs(err, &terr) {
		assert.Equal("$t32", terr.Token)
	}
}

func TestAssembleStrict(t *testing.T) {
	assert := assert.New(t)

	loose := &Assembler{}
	strict := &Assembler{Strict: true}

	field, err := loose.Assemble("add v0, a1, 24")
	assert.NoError(err)
	assert.Equal(Word(0x00B81020), Encode(field))

	_, err = strict.Assemble("add v0, $a1, $t8")
	assert.ErrorIs(err, ErrRegisterPrefix)

	_, err = strict.Assemble(".word 12")
	assert.ErrorIs(err, ErrPrefixMissing)

	field, err = strict.Assemble(".word 0x0000000C")
	assert.NoError(err)
	assert.Equal(Word(0x0000000C), Encode(field))

	field, err = strict.Assemble("add $v0, $a1, $t8")
	assert.NoError(err)
	assert.Equal(Word(0x00B81020), Encode(field))
}

func TestAssembleExpression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	field, err := asm.Assemble("addi $t0, $zero, $(2+3)")
	assert.NoError(err)
	assert.Equal(Word(0x20080005), Encode(field))

	field, err = asm.Assemble("addi $t0, $zero, $(3-4)")
	assert.NoError(err)
	assert.Equal(Word(0x2008FFFF), Encode(field))

	asm.Predefine("FRAME", "0x10")
	asm.Predefine("NAME", "frame")
	field, err = asm.Assemble("lw $t0, $(FRAME//2)($sp)")
	assert.NoError(err)
	assert.Equal(Word(0x8FA80008), Encode(field))

	field, err = asm.Assemble("lw $t0, $(4)(sp)")
	assert.NoError(err)
	assert.Equal(Word(0x8FA80004), Encode(field))

	field, err = asm.Assemble("lw $t0, $((1+1)*4)(sp)")
	assert.NoError(err)
	assert.Equal(Word(0x8FA80008), Encode(field))

	asm.Predefine("FRAME", "4")
	field, err = asm.Assemble("lw $t0, $(FRAME*2)($sp)")
	assert.NoError(err)
	assert.Equal(Word(0x8FA80008), Encode(field))

	for _, line := range []string{
		"addi $t0, $zero, $(1//0)",
		"addi $t0, $zero, $(NAME)",
		"addi $t0, $zero, $(UNDEFINED)",
		`addi $t0, $zero, $("five")`,
		"addi $t0, $zero, $((1+2)",
	} {
		_, err = asm.Assemble(line)
		assert.ErrorIs(err, ErrExpression, line)
		assert.ErrorIs(err, ErrSyntax, line)
	}

	_, err = asm.Assemble("addi $t0, $zero, $(1 << 20)")
	assert.ErrorIs(err, ErrRangeOverflow)
}

// canonicalField builds a field for an entry with every rendered component
// set and every other component zero.
func canonicalField(entry Entry, code uint8) Field {
	var vals operandValues
	for _, kind := range formatOperands[entry.Format] {
		switch kind {
		case operandRs:
			vals.rs = 29
		case operandRt:
			vals.rt = 24
		case operandRd:
			vals.rd = 2
		case operandSh:
			vals.sh = 17
		case operandImm:
			vals.imm = -2
		case operandAddr:
			vals.addr = 0x2345678
		}
	}

	switch entry.Type {
	case TYPE_R:
		return RField{Rs: vals.rs, Rt: vals.rt, Rd: vals.rd, Sh: vals.sh, Fn: code}
	case TYPE_I:
		return IField{Op: code, Rs: vals.rs, Rt: vals.rt, Imm: vals.imm}
	default:
		return JField{Op: code, Addr: vals.addr}
	}
}

func TestRoundTripMnemonics(t *testing.T) {
	assert := assert.New(t)

	modes := []Disassembler{
		{},
		{NumericRegisters: true},
		{DecimalImmediates: true},
		{NumericRegisters: true, DecimalImmediates: true},
	}

	mnemonics := Mnemonics()
	require.Len(t, mnemonics, len(opcodeAssigned)+len(functionAssigned))

	for _, mnemonic := range mnemonics {
		entry, code, ok := LookupMnemonic(mnemonic)
		require.True(t, ok, mnemonic)

		w := Encode(canonicalField(entry, code))
		for _, dis := range modes {
			text, known := dis.Disassemble(w)
			assert.True(known, text)

			for _, strict := range []bool{false, true} {
				asm := &Assembler{Strict: strict}
				field, err := asm.Assemble(text)
				if assert.NoError(err, text) {
					assert.Equal(w, Encode(field), text)
				}
			}
		}
	}
}
