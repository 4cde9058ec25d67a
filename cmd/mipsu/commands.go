package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/mipsu/stream"
)

// flags holds the command line toggles shared by every subcommand.
type flags struct {
	opts    stream.Options
	little  bool
	files   []string
	defines []string
}

var commandHelp = [...]struct {
	use   string
	short string
}{
	{"decode [word]", "Decode instruction words into their bitfields"},
	{"encode [op fields...]", "Encode bitfields into instruction words"},
	{"disasm [word]", "Disassemble instruction words"},
	{"asm [statement...]", "Assemble one statement per line"},
}

func newRootCommand() *cobra.Command {
	fl := &flags{}

	root := &cobra.Command{
		Use:           "mipsu <command> [options] [tokens...]",
		Short:         "MIPS32 utilities",
		Long:          "Decode, encode, disassemble and assemble MIPS32 instruction words.",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.RunE = func(_ *cobra.Command, _ []string) error {
		return fmt.Errorf("%w: %v", stream.ErrUsage, f("command missing"))
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&fl.opts.Quiet, "quiet", "q", false, "Emit only the word, the field tokens or the mnemonic")
	pf.BoolVarP(&fl.opts.NumericRegisters, "nreg", "n", false, "Name registers by number")
	pf.BoolVarP(&fl.opts.DecimalImmediates, "dimm", "d", false, "Show immediates in decimal")
	pf.BoolVarP(&fl.opts.Strict, "strict", "s", false, "Require prefixes, stop at the first error")
	pf.BoolVarP(&fl.opts.Raw, "raw", "r", false, "Binary word input (decode, disasm) or output (encode, asm)")
	pf.BoolVarP(&fl.little, "little", "l", false, "Raw words are little-endian")
	pf.BoolVarP(&fl.opts.Verbose, "verbose", "v", false, "Verbose mode")
	pf.StringArrayVarP(&fl.files, "file", "f", nil, "Input file, '-' for standard input (repeatable)")

	for _, help := range commandHelp {
		name, _, _ := strings.Cut(help.use, " ")
		cmd, ok := stream.ParseCommand(name)
		if !ok {
			panic("unknown command " + name)
		}
		sub := &cobra.Command{
			Use:   help.use,
			Short: help.short,
			RunE: func(_ *cobra.Command, args []string) error {
				return fl.run(cmd, args)
			},
		}
		if cmd.WordInput() {
			sub.Args = usageArgs(cobra.MaximumNArgs(1))
		}
		if cmd == stream.COMMAND_ASM {
			sub.Flags().StringArrayVarP(&fl.defines, "define", "D", nil, "NAME=VALUE visible to $(...) expressions")
		}
		root.AddCommand(sub)
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", stream.ErrUsage, err)
	})

	return root
}

// usageArgs marks argument count failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", stream.ErrUsage, err)
		}
		return nil
	}
}

// run performs one subcommand.
func (fl *flags) run(cmd stream.Command, args []string) (err error) {
	logger := newLogger(os.Stderr, fl.opts.Verbose)
	defer logger.Sync()
	stream.SetLogger(logger)

	if fl.little {
		fl.opts.ByteOrder = binary.LittleEndian
	}

	cv := stream.NewConverter(os.Stdout)
	cv.Options = fl.opts

	for _, define := range fl.defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok {
			return fmt.Errorf("%w: -D %v", stream.ErrUsage, define)
		}
		cv.Assembler.Predefine(name, value)
	}

	defer func() {
		err = internalError(err)
	}()

	if len(args) != 0 {
		if len(fl.files) != 0 {
			return fmt.Errorf("%w: %v", stream.ErrUsage, f("tokens and --file are exclusive"))
		}
		return cv.Convert(cmd, args)
	}

	files := fl.files
	if len(files) == 0 {
		files = []string{"-"}
	}

	var inputs []stream.Input
	for _, name := range files {
		if name == "-" {
			inputs = append(inputs, stream.Input{Name: "-", Reader: os.Stdin})
			continue
		}
		inf, err := os.Open(name)
		if err != nil {
			return err
		}
		defer inf.Close()
		inputs = append(inputs, stream.Input{Name: name, Reader: inf})
	}

	return cv.Stream(cmd, inputs...)
}
