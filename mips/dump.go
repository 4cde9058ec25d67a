package mips

import (
	"fmt"
	"strings"
)

// Dump returns the bitfield view of a word: a header with the word and its
// type, then one line per field with its raw value and its reading.
func (dis *Disassembler) Dump(w Word) (block string, known bool) {
	field := Decode(w)
	entry, known := Lookup(field)

	mnemonic := "?"
	if known {
		mnemonic = entry.Mnemonic
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "hex:   0x%08X\n", uint32(w))
	fmt.Fprintf(&sb, "type:  %v\n", field.Type())
	fmt.Fprintf(&sb, "--------\n")

	switch fd := field.(type) {
	case RField:
		fmt.Fprintf(&sb, "rs:  0x%02X  (%s)\n", fd.Rs, dis.register(fd.Rs))
		fmt.Fprintf(&sb, "rt:  0x%02X  (%s)\n", fd.Rt, dis.register(fd.Rt))
		fmt.Fprintf(&sb, "rd:  0x%02X  (%s)\n", fd.Rd, dis.register(fd.Rd))
		fmt.Fprintf(&sb, "sh:  0x%02X  (%d)\n", fd.Sh, fd.Sh)
		fmt.Fprintf(&sb, "fn:  0x%02X  (%s)\n", fd.Fn, mnemonic)
	case IField:
		reading := fmt.Sprintf("%d", fd.Imm)
		if known && entry.Unsigned {
			reading = fmt.Sprintf("%d", uint16(fd.Imm))
		}
		fmt.Fprintf(&sb, "op:   0x%02X    (%s)\n", fd.Op, mnemonic)
		fmt.Fprintf(&sb, "rs:   0x%02X    (%s)\n", fd.Rs, dis.register(fd.Rs))
		fmt.Fprintf(&sb, "rt:   0x%02X    (%s)\n", fd.Rt, dis.register(fd.Rt))
		fmt.Fprintf(&sb, "imm:  0x%04X  (%s)\n", uint16(fd.Imm), reading)
	case JField:
		fmt.Fprintf(&sb, "op:    0x%02X       (%s)\n", fd.Op, mnemonic)
		fmt.Fprintf(&sb, "addr:  0x%07X  (%d)\n", fd.Addr, fd.Addr)
	}

	block = sb.String()
	return
}
