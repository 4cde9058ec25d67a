package stream

// Command selects the conversion a Converter performs.
type Command int

//go:generate go tool stringer -linecomment -type=Command
const (
	COMMAND_DECODE = Command(0) // decode
	COMMAND_ENCODE = Command(1) // encode
	COMMAND_DISASM = Command(2) // disasm
	COMMAND_ASM    = Command(3) // asm
)

// WordInput reports whether the command reads instruction words, and so reads
// raw binary input in raw mode. The other commands write raw binary output.
func (cmd Command) WordInput() bool {
	return cmd == COMMAND_DECODE || cmd == COMMAND_DISASM
}

// ParseCommand returns the command with the given name.
func ParseCommand(name string) (cmd Command, ok bool) {
	for c := COMMAND_DECODE; c <= COMMAND_ASM; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return
}
