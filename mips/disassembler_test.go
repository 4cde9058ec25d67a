package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		word    Word
		text    string
		numeric string
		decimal string
	}{
		{0x00B81020, "add $v0, $a1, $t8", "add $2, $5, $24", "add $v0, $a1, $t8"},
		{0x8FA80008, "lw $t0, 0x0008($sp)", "lw $8, 0x0008($29)", "lw $t0, 8($sp)"},
		{0x2008FFFF, "addi $t0, $zero, 0xFFFF", "addi $8, $0, 0xFFFF", "addi $t0, $zero, -1"},
		{0x3408FFFF, "ori $t0, $zero, 0xFFFF", "ori $8, $0, 0xFFFF", "ori $t0, $zero, 65535"},
		{0x3C081234, "lui $t0, 0x1234", "lui $8, 0x1234", "lui $t0, 4660"},
		{0x1109FFFE, "beq $t0, $t1, 0xFFFE", "beq $8, $9, 0xFFFE", "beq $t0, $t1, -2"},
		{0x08000040, "j 0x0000040", "j 0x0000040", "j 64"},
		{0x00094100, "sll $t0, $t1, 4", "sll $8, $9, 4", "sll $t0, $t1, 4"},
		{0x03E00008, "jr $ra", "jr $31", "jr $ra"},
		{0x0000000C, "syscall", "syscall", "syscall"},
		{0x01095004, "sllv $t2, $t1, $t0", "sllv $10, $9, $8", "sllv $t2, $t1, $t0"},
		{0x01090018, "mult $t0, $t1", "mult $8, $9", "mult $t0, $t1"},
		{0x00004010, "mfhi $t0", "mfhi $8", "mfhi $t0"},
	}

	plain := &Disassembler{}
	numeric := &Disassembler{NumericRegisters: true}
	decimal := &Disassembler{DecimalImmediates: true}

	for _, entry := range table {
		text, known := plain.Disassemble(entry.word)
		assert.True(known, entry.text)
		assert.Equal(entry.text, text)

		text, _ = numeric.Disassemble(entry.word)
		assert.Equal(entry.numeric, text)

		text, _ = decimal.Disassemble(entry.word)
		assert.Equal(entry.decimal, text)
	}
}

func TestDisassembleUnknown(t *testing.T) {
	assert := assert.New(t)

	dis := &Disassembler{}

	for _, w := range []Word{
		0xFC000000, // unassigned opcode
		0x00000001, // unassigned function code
		0x00B81060, // add with a non-zero shift amount
		0x0001000C, // syscall with a non-zero rt
		0x3C281234, // lui with a non-zero rs
	} {
		text, known := dis.Disassemble(w)
		assert.False(known)
		assert.Equal(RawWord(w), text)
	}

	assert.Equal(".word 0xFC000000", RawWord(0xFC000000))
	assert.Equal("unknown instruction 0xFC000000", ErrUnknownInstruction(0xFC000000).Error())
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	dis := &Disassembler{}

	line, known := dis.Listing(0x00B81020)
	assert.True(known)
	assert.Equal("0x00B81020  add    $v0, $a1, $t8", line)

	line, known = dis.Listing(0x0000000C)
	assert.True(known)
	assert.Equal("0x0000000C  syscall", line)

	line, known = dis.Listing(0xFC000000)
	assert.False(known)
	assert.Equal("0xFC000000  .word  0xFC000000", line)
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	dis := &Disassembler{}

	block, known := dis.Dump(0x00B81020)
	assert.True(known)
	assert.Equal("hex:   0x00B81020\n"+
		"type:  R\n"+
		"--------\n"+
		"rs:  0x05  ($a1)\n"+
		"rt:  0x18  ($t8)\n"+
		"rd:  0x02  ($v0)\n"+
		"sh:  0x00  (0)\n"+
		"fn:  0x20  (add)\n", block)

	block, known = dis.Dump(0x8FA80008)
	assert.True(known)
	assert.Equal("hex:   0x8FA80008\n"+
		"type:  I\n"+
		"--------\n"+
		"op:   0x23    (lw)\n"+
		"rs:   0x1D    ($sp)\n"+
		"rt:   0x08    ($t0)\n"+
		"imm:  0x0008  (8)\n", block)

	block, known = dis.Dump(0x3408FFFF)
	assert.True(known)
	assert.Contains(block, "imm:  0xFFFF  (65535)\n")

	block, _ = dis.Dump(0x2008FFFF)
	assert.Contains(block, "imm:  0xFFFF  (-1)\n")

	block, known = dis.Dump(0x08000040)
	assert.True(known)
	assert.Equal("hex:   0x08000040\n"+
		"type:  J\n"+
		"--------\n"+
		"op:    0x02       (j)\n"+
		"addr:  0x0000040  (64)\n", block)

	block, known = dis.Dump(0xFC000000)
	assert.False(known)
	assert.Contains(block, "op:   0x3F    (?)\n")

	numeric := &Disassembler{NumericRegisters: true}
	block, _ = numeric.Dump(0x00B81020)
	assert.Contains(block, "rs:  0x05  ($5)\n")
}
