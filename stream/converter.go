// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package stream

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/ezrec/mipsu/internal"
	"github.com/ezrec/mipsu/mips"
)

// Converter state. Options + assembler + disassembler + output sink.
type Converter struct {
	Options                        // Presentation and behaviour toggles.
	Output       io.Writer         // Sink for text lines or raw words.
	Assembler    mips.Assembler    // Assembler used by COMMAND_ASM.
	Disassembler mips.Disassembler // Disassembler used for all text output.
}

// NewConverter creates a new converter writing to output.
func NewConverter(output io.Writer) (cv *Converter) {
	cv = &Converter{
		Output: output,
	}

	return
}

// configure pushes the options down to the assembler and disassembler.
func (cv *Converter) configure() {
	cv.Assembler.Strict = cv.Strict
	cv.Disassembler.NumericRegisters = cv.NumericRegisters
	cv.Disassembler.DecimalImmediates = cv.DecimalImmediates
}

// Convert converts a single instruction given as already split arguments.
// Decode and disasm take exactly one word literal; encode takes the field
// tokens; asm takes the statement, split anywhere.
func (cv *Converter) Convert(cmd Command, tokens []string) (err error) {
	cv.configure()

	if cmd.WordInput() && len(tokens) != 1 {
		err = ErrUsage
		return
	}

	unit := Unit{Source: cmd.String(), Text: strings.Join(tokens, " ")}

	out, err := cv.convert(cmd, unit, false)
	if err != nil {
		return
	}

	_, err = cv.Output.Write(out)
	return
}

// Stream converts every unit of the inputs, in order.
//
// In strict mode the first failing unit ends the stream with an *ErrUnit and
// nothing is written for it or any later unit. Otherwise failing units are
// logged and skipped, and ErrSkipped reports how many were skipped once the
// inputs are exhausted. A failing unit never produces partial output.
func (cv *Converter) Stream(cmd Command, inputs ...Input) (err error) {
	cv.configure()

	raw := cv.Raw && cmd.WordInput()

	seqs := make([]iter.Seq2[Unit, error], 0, len(inputs))
	for _, input := range inputs {
		if raw {
			seqs = append(seqs, Words(input, cv.byteOrder()))
		} else {
			seqs = append(seqs, Lines(input))
		}
	}

	var skipped int
	for unit, ioerr := range internal.IterErrConcat(seqs...) {
		if ioerr != nil {
			err = fmt.Errorf("%v: %w", unit.Source, ioerr)
			return
		}

		var out []byte
		uerr := unit.Err
		if uerr == nil {
			out, uerr = cv.convert(cmd, unit, raw)
		}

		if uerr != nil {
			if cv.Strict {
				err = &ErrUnit{Source: unit.Source, LineNo: unit.LineNo, Text: unit.Text, Err: uerr}
				return
			}
			Logger().Warn(f("unit skipped"),
				zap.String("source", unit.Source),
				zap.Int("line", unit.LineNo),
				zap.String("unit", unit.Text),
				zap.Error(uerr))
			skipped++
			continue
		}

		_, err = cv.Output.Write(out)
		if err != nil {
			return
		}
	}

	if skipped > 0 {
		err = ErrSkipped(skipped)
	}

	return
}

// convert converts one unit into its complete output.
func (cv *Converter) convert(cmd Command, unit Unit, raw bool) (out []byte, err error) {
	var buf bytes.Buffer
	var field mips.Field

	switch cmd {
	case COMMAND_DECODE, COMMAND_DISASM:
		w := unit.Word
		if !raw {
			w, err = mips.ParseWord(unit.Text, cv.Strict)
			if err != nil {
				return
			}
		}
		field = mips.Decode(w)
		cv.writeText(&buf, cmd, unit, w)
	case COMMAND_ENCODE:
		field, err = mips.ParseField(strings.Fields(unit.Text), cv.Strict)
		if err != nil {
			return
		}
		cv.writeWord(&buf, cmd, unit, mips.Encode(field))
	case COMMAND_ASM:
		field, err = cv.Assembler.Assemble(unit.Text)
		if err != nil {
			return
		}
		cv.writeWord(&buf, cmd, unit, mips.Encode(field))
	default:
		err = ErrUsage
		return
	}

	if cv.Verbose {
		Logger().Debug(f("converted"),
			zap.String("source", unit.Source),
			zap.Int("line", unit.LineNo),
			zap.String("field", spew.Sdump(field)))
	}

	out = buf.Bytes()
	return
}

// writeText writes the text view of a word for the command.
func (cv *Converter) writeText(buf *bytes.Buffer, cmd Command, unit Unit, w mips.Word) {
	dis := &cv.Disassembler

	var text string
	known := true

	switch {
	case cmd == COMMAND_DECODE && cv.Quiet:
		text = mips.Decode(w).String() + "\n"
	case cmd == COMMAND_DECODE, cmd == COMMAND_ENCODE:
		text, known = dis.Dump(w)
	case cmd == COMMAND_DISASM && cv.Quiet:
		text, known = dis.Disassemble(w)
		text += "\n"
	default:
		text, known = dis.Listing(w)
		text += "\n"
	}

	if !known {
		Logger().Warn(mips.ErrUnknownInstruction(w).Error(),
			zap.String("source", unit.Source),
			zap.Int("line", unit.LineNo))
	}

	buf.WriteString(text)
}

// writeWord writes an encoded word for the command: raw bytes, the bare hex
// word, or its text view.
func (cv *Converter) writeWord(buf *bytes.Buffer, cmd Command, unit Unit, w mips.Word) {
	switch {
	case cv.Raw:
		var word [4]byte
		cv.byteOrder().PutUint32(word[:], uint32(w))
		buf.Write(word[:])
	case cv.Quiet:
		fmt.Fprintf(buf, "0x%08X\n", uint32(w))
	default:
		cv.writeText(buf, cmd, unit, w)
	}
}
