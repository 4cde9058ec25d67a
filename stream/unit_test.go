package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipsu/mips"
)

func TestLines(t *testing.T) {
	assert := assert.New(t)

	input := Input{Name: "in", Reader: strings.NewReader("\n  add $v0, $a1, $t8  # sum\n; note\n\tsyscall\n")}

	var units []Unit
	for unit, err := range Lines(input) {
		assert.NoError(err)
		units = append(units, unit)
	}

	assert.Equal([]Unit{
		{Source: "in", LineNo: 2, Text: "add $v0, $a1, $t8"},
		{Source: "in", LineNo: 4, Text: "syscall"},
	}, units)
}

func TestLinesError(t *testing.T) {
	assert := assert.New(t)

	fault := errors.New("fault")
	input := Input{Name: "in", Reader: iotest.ErrReader(fault)}

	var count int
	for _, err := range Lines(input) {
		assert.ErrorIs(err, fault)
		count++
	}
	assert.Equal(1, count)
}

func TestWords(t *testing.T) {
	assert := assert.New(t)

	data := []byte{0x00, 0xB8, 0x10, 0x20, 0x0C, 0x00, 0x00, 0x00, 0xAA, 0xBB}

	var units []Unit
	for unit, err := range Words(Input{Name: "raw", Reader: bytes.NewReader(data)}, binary.LittleEndian) {
		assert.NoError(err)
		units = append(units, unit)
	}

	assert.Equal([]Unit{
		{Source: "raw", LineNo: 1, Text: "0x2010B800", Word: mips.Word(0x2010B800)},
		{Source: "raw", LineNo: 2, Text: "0x0000000C", Word: mips.Word(0x0000000C)},
		{Source: "raw", LineNo: 3, Text: "AA BB", Err: ErrPartialWord},
	}, units)
}

func TestLinesLong(t *testing.T) {
	assert := assert.New(t)

	long := strings.Repeat("x", 70000)
	input := Input{Name: "in", Reader: strings.NewReader("add $v0, $a1, $t8\n" + long + "\njr $ra")}

	var units []Unit
	for unit, err := range Lines(input) {
		assert.NoError(err)
		units = append(units, unit)
	}

	assert.Equal([]Unit{
		{Source: "in", LineNo: 1, Text: "add $v0, $a1, $t8"},
		{Source: "in", LineNo: 2, Text: long},
		{Source: "in", LineNo: 3, Text: "jr $ra"},
	}, units)
}
