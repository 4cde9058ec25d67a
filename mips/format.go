package mips

import (
	"fmt"
	"strings"
)

// operand is the kind of a single textual operand.
type operand int

const (
	operandRs operand = iota
	operandRt
	operandRd
	operandSh
	operandImm
	operandAddr
)

// formatOperands lists the operands of each format in textual order.
var formatOperands = [...][]operand{
	FORMAT_UNKNOWN:   nil,
	FORMAT_NONE:      {},
	FORMAT_RD_RS_RT:  {operandRd, operandRs, operandRt},
	FORMAT_RD_RT_RS:  {operandRd, operandRt, operandRs},
	FORMAT_RD_RT_SH:  {operandRd, operandRt, operandSh},
	FORMAT_RS_RT:     {operandRs, operandRt},
	FORMAT_RD_RS:     {operandRd, operandRs},
	FORMAT_RS:        {operandRs},
	FORMAT_RD:        {operandRd},
	FORMAT_RT_RS_IMM: {operandRt, operandRs, operandImm},
	FORMAT_RT_IMM_RS: {operandRt, operandImm, operandRs},
	FORMAT_RS_RT_IMM: {operandRs, operandRt, operandImm},
	FORMAT_RT_IMM:    {operandRt, operandImm},
	FORMAT_ADDR:      {operandAddr},
}

// Operands returns the number of textual operands a format takes.
func (format Format) Operands() int {
	if format < 0 || int(format) >= len(formatOperands) {
		return 0
	}
	return len(formatOperands[format])
}

// operandValues holds the components an operand list reads or writes.
type operandValues struct {
	rs, rt, rd, sh uint8
	imm            int16
	addr           uint32
}

// parseOperands builds a field from the operand tokens of an entry whose
// primary opcode (I, J) or function code (R) is code.
func parseOperands(entry Entry, code uint8, tokens []string, strict bool) (field Field, err error) {
	if entry.Format == FORMAT_UNKNOWN || len(tokens) != entry.Format.Operands() {
		err = ErrBadOperandFormat
		return
	}

	var vals operandValues
	for n, kind := range formatOperands[entry.Format] {
		token := tokens[n]
		switch kind {
		case operandRs:
			vals.rs, err = ParseRegister(token, strict)
		case operandRt:
			vals.rt, err = ParseRegister(token, strict)
		case operandRd:
			vals.rd, err = ParseRegister(token, strict)
		case operandSh:
			var v int64
			v, err = ParseValue(token, false, widthReg)
			vals.sh = uint8(v)
		case operandImm:
			var v int64
			v, err = ParseValue(token, !entry.Unsigned, widthImm)
			vals.imm = int16(uint16(v))
		case operandAddr:
			var v int64
			v, err = ParseValue(token, false, widthAddr)
			vals.addr = uint32(v)
		}
		if err != nil {
			return
		}
	}

	switch entry.Type {
	case TYPE_R:
		field = RField{Rs: vals.rs, Rt: vals.rt, Rd: vals.rd, Sh: vals.sh, Fn: code}
	case TYPE_I:
		field = IField{Op: code, Rs: vals.rs, Rt: vals.rt, Imm: vals.imm}
	case TYPE_J:
		field = JField{Op: code, Addr: vals.addr}
	}

	return
}

// fieldValues extracts the operand components of a field.
func fieldValues(field Field) (vals operandValues) {
	switch fd := field.(type) {
	case RField:
		vals = operandValues{rs: fd.Rs, rt: fd.Rt, rd: fd.Rd, sh: fd.Sh}
	case IField:
		vals = operandValues{rs: fd.Rs, rt: fd.Rt, imm: fd.Imm}
	case JField:
		vals = operandValues{addr: fd.Addr}
	}
	return
}

// canonical reports whether every component the format does not render is
// zero, so that rendering loses no bits.
func canonical(format Format, field Field) bool {
	vals := fieldValues(field)
	for _, kind := range formatOperands[format] {
		switch kind {
		case operandRs:
			vals.rs = 0
		case operandRt:
			vals.rt = 0
		case operandRd:
			vals.rd = 0
		case operandSh:
			vals.sh = 0
		case operandImm:
			vals.imm = 0
		case operandAddr:
			vals.addr = 0
		}
	}
	return vals == operandValues{}
}

// renderOperands writes the operands of a field in the textual order of its
// format.
func (dis *Disassembler) renderOperands(entry Entry, field Field) string {
	vals := fieldValues(field)

	if entry.Format == FORMAT_RT_IMM_RS {
		return fmt.Sprintf("%s, %s(%s)",
			dis.register(vals.rt), dis.immediate(entry, vals.imm), dis.register(vals.rs))
	}

	var parts []string
	for _, kind := range formatOperands[entry.Format] {
		switch kind {
		case operandRs:
			parts = append(parts, dis.register(vals.rs))
		case operandRt:
			parts = append(parts, dis.register(vals.rt))
		case operandRd:
			parts = append(parts, dis.register(vals.rd))
		case operandSh:
			parts = append(parts, fmt.Sprintf("%d", vals.sh))
		case operandImm:
			parts = append(parts, dis.immediate(entry, vals.imm))
		case operandAddr:
			parts = append(parts, dis.address(vals.addr))
		}
	}

	return strings.Join(parts, ", ")
}

func (dis *Disassembler) register(index uint8) string {
	if dis.NumericRegisters {
		return "$" + RegisterNumeral(index)
	}
	return "$" + RegisterName(index)
}

func (dis *Disassembler) immediate(entry Entry, imm int16) string {
	switch {
	case !dis.DecimalImmediates:
		return fmt.Sprintf("0x%04X", uint16(imm))
	case entry.Unsigned:
		return fmt.Sprintf("%d", uint16(imm))
	default:
		return fmt.Sprintf("%d", imm)
	}
}

func (dis *Disassembler) address(addr uint32) string {
	if dis.DecimalImmediates {
		return fmt.Sprintf("%d", addr)
	}
	return fmt.Sprintf("0x%07X", addr)
}
