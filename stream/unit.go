package stream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/mipsu/mips"
)

// Input is a named source of units.
type Input struct {
	Name   string
	Reader io.Reader
}

// Unit is one independently converted piece of input: a line of text, or a
// word of a raw binary stream.
type Unit struct {
	Source string
	LineNo int       // Line number, or word index for raw input, from 1.
	Text   string    // Line text without comments.
	Word   mips.Word // Raw input word.
	Err    error     // Read fault confined to this unit.
}

// stripComment drops a '#' or ';' comment and surrounding space.
func stripComment(line string) string {
	if n := strings.IndexAny(line, "#;"); n >= 0 {
		line = line[:n]
	}
	return strings.TrimSpace(line)
}

// Lines returns an iterator over the non-blank lines of an input. Lines have
// no length limit. A read failure is yielded once as the error and ends the
// iteration.
func Lines(input Input) iter.Seq2[Unit, error] {
	return func(yield func(unit Unit, err error) bool) {
		reader := bufio.NewReader(input.Reader)
		var lineno int
		for {
			line, err := reader.ReadString('\n')
			if len(line) > 0 {
				lineno++
				text := stripComment(line)
				if len(text) > 0 && !yield(Unit{Source: input.Name, LineNo: lineno, Text: text}, nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Unit{Source: input.Name, LineNo: lineno}, err)
				return
			}
		}
	}
}

// Words returns an iterator over the 4-byte words of a raw input. The input is
// read in full first. Trailing bytes that do not fill a word form a unit of
// their own that carries ErrPartialWord.
func Words(input Input, order binary.ByteOrder) iter.Seq2[Unit, error] {
	return func(yield func(unit Unit, err error) bool) {
		data, err := io.ReadAll(input.Reader)
		if err != nil {
			yield(Unit{Source: input.Name}, err)
			return
		}

		var index int
		for len(data) > 0 {
			index++
			unit := Unit{Source: input.Name, LineNo: index}
			if len(data) < 4 {
				unit.Text = fmt.Sprintf("% X", data)
				unit.Err = ErrPartialWord
				yield(unit, nil)
				return
			}
			unit.Word = mips.Word(order.Uint32(data[:4]))
			unit.Text = fmt.Sprintf("0x%08X", uint32(unit.Word))
			if !yield(unit, nil) {
				return
			}
			data = data[4:]
		}
	}
}
