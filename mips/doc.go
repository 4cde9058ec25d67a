// Package mips converts MIPS32 instruction words to and from their bitfield
// and assembly representations.
//
// A Word is decoded into a Field, one of RField, IField or JField depending on
// its primary opcode, and a Field encodes back into the same Word. The
// Disassembler renders words as assembly text using the opcode and function
// code tables, and the Assembler parses one assembly statement back into a
// Field. Numeric literals must fill their field exactly: hexadecimal and binary
// literals carry one digit per nibble or bit of the field, and decimal
// literals are range checked against the field's width and signedness.
package mips
