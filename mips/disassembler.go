package mips

import (
	"fmt"
	"strings"
)

// Disassembler renders words as assembly text.
type Disassembler struct {
	NumericRegisters  bool // Render "$8" instead of "$t0".
	DecimalImmediates bool // Render immediates and addresses in decimal.
}

// RawWord renders a word as a ".word" directive.
func RawWord(w Word) string {
	return fmt.Sprintf(".word 0x%08X", uint32(w))
}

// describe looks up the entry of a word, failing for unassigned codes and
// for words whose unrendered fields are non-zero.
func describe(w Word) (field Field, entry Entry, ok bool) {
	field = Decode(w)
	entry, ok = Lookup(field)
	if ok && !canonical(entry.Format, field) {
		ok = false
	}
	return
}

// Disassemble returns the assembly text of a word. Words without a tabulated
// operation come back as a ".word" directive with known unset.
func (dis *Disassembler) Disassemble(w Word) (text string, known bool) {
	field, entry, known := describe(w)
	if !known {
		text = RawWord(w)
		return
	}

	text = entry.Mnemonic
	if entry.Format != FORMAT_NONE {
		text += " " + dis.renderOperands(entry, field)
	}

	return
}

// Listing returns the word and its column aligned assembly text.
func (dis *Disassembler) Listing(w Word) (line string, known bool) {
	field, entry, known := describe(w)

	mnemonic, operands := ".word", fmt.Sprintf("0x%08X", uint32(w))
	if known {
		mnemonic = entry.Mnemonic
		operands = dis.renderOperands(entry, field)
	}

	line = strings.TrimRight(fmt.Sprintf("0x%08X  %-6s %s", uint32(w), mnemonic, operands), " ")

	return
}
