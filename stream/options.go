package stream

import (
	"encoding/binary"
)

// Options are the presentation and behaviour toggles of a Converter.
type Options struct {
	Quiet             bool             // Emit only the word, the field tokens or the mnemonic text.
	NumericRegisters  bool             // Render registers by number.
	DecimalImmediates bool             // Render immediates and addresses in decimal.
	Strict            bool             // Require prefixes, abort on the first failing unit.
	Raw               bool             // Binary word I/O.
	Verbose           bool             // Log every converted unit.
	ByteOrder         binary.ByteOrder // Byte order of raw words, big-endian if nil.
}

func (opts *Options) byteOrder() binary.ByteOrder {
	if opts.ByteOrder == nil {
		return binary.BigEndian
	}
	return opts.ByteOrder
}
