// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mips

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler converts single assembly statements into fields.
type Assembler struct {
	Strict bool // If set, registers must carry their '$' prefix.

	predefine map[string]string // Names visible to $(...) expressions.
}

// Predefine defines a new name, or redefines an existing name, for use in
// $(...) expressions.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	defer func() {
		if err != nil {
			err = &ErrToken{Token: "$(" + expr + ")", Err: err}
		}
	}()

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.predefine {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer predefines.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if serr != nil {
		err = fmt.Errorf("%w: %v", ErrExpression, serr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrRangeOverflow
		return
	}
	return
}

// expand replaces every $(...) expression of a line by its decimal value.
// An expression ends at the parenthesis that balances its opening one.
func (asm *Assembler) expand(line string) (out string, err error) {
	var sb strings.Builder

	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			break
		}

		depth := 0
		end := -1
		for n := start + 1; n < len(line) && end < 0; n++ {
			switch line[n] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = n
				}
			}
		}
		if end < 0 {
			err = &ErrToken{Token: line[start:], Err: ErrExpression}
			return
		}

		var value int64
		value, err = asm.parenEval(line[start+2 : end])
		if err != nil {
			return
		}

		sb.WriteString(line[:start])
		sb.WriteString(" " + strconv.FormatInt(value, 10) + " ")
		line = line[end+1:]
	}

	sb.WriteString(line)
	out = sb.String()
	return
}

// Tokenize splits an assembly statement into its mnemonic and operand
// tokens. Comments starting with '#' or ';' are dropped and $(...)
// expressions are replaced by their decimal value.
func (asm *Assembler) Tokenize(line string) (tokens []string, err error) {
	if n := strings.IndexAny(line, "#;"); n >= 0 {
		line = line[:n]
	}

	line, err = asm.expand(line)
	if err != nil {
		return
	}

	tokens = strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '(' || r == ')'
	})

	return
}

// Assemble parses one assembly statement.
func (asm *Assembler) Assemble(line string) (field Field, err error) {
	tokens, err := asm.Tokenize(line)
	if err != nil {
		return
	}

	return asm.AssembleTokens(tokens)
}

// AssembleTokens builds a field from a mnemonic and its operand tokens.
// The ".word" directive takes a single word literal.
func (asm *Assembler) AssembleTokens(tokens []string) (field Field, err error) {
	if len(tokens) == 0 {
		err = ErrInstructionEmpty
		return
	}

	if strings.EqualFold(tokens[0], ".word") {
		if len(tokens) != 2 {
			err = &ErrToken{Token: tokens[0], Err: ErrBadOperandFormat}
			return
		}
		var w Word
		w, err = ParseWord(tokens[1], asm.Strict)
		if err != nil {
			return
		}
		field = Decode(w)
		return
	}

	entry, code, ok := LookupMnemonic(tokens[0])
	if !ok {
		err = &ErrToken{Token: tokens[0], Err: ErrBadOp}
		return
	}

	field, err = parseOperands(entry, code, tokens[1:], asm.Strict)
	if err == ErrBadOperandFormat {
		err = &ErrToken{Token: tokens[0], Err: err}
	}

	return
}
