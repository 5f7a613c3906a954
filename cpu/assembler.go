// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strings"
)

// Word separators. Operands of two operand instructions may also be
// separated by commas.
const (
	SEP_WORD    = " \t\n"
	SEP_OPERAND = " ,\t\n"
)

// Assembler is a single pass assembler for the 8-bit CPU.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Strict  bool     // If set, rejects non-numeric constants and excess operands.
	Opcode  []Opcode // List of generated opcodes.

	image Image
}

// tokenizer splits a line into words, with the separators chosen per word.
// A word ends at the first separator, which is consumed with it.
type tokenizer struct {
	line string
	pos  int
}

func (tok *tokenizer) next(sep string) (word string) {
	for tok.pos < len(tok.line) && strings.IndexByte(sep, tok.line[tok.pos]) >= 0 {
		tok.pos++
	}

	start := tok.pos
	for tok.pos < len(tok.line) && strings.IndexByte(sep, tok.line[tok.pos]) < 0 {
		tok.pos++
	}
	word = tok.line[start:tok.pos]

	if tok.pos < len(tok.line) {
		tok.pos++
	}

	return
}

// constant parses a constant according to the assembler mode.
func (asm *Assembler) constant(word string) (value byte, err error) {
	if asm.Strict {
		return ParseConstantStrict(word)
	}
	return ParseConstant(word)
}

// encodeLine encodes a single line of source. The encoded bytes are
// returned, not written, but img is consulted so that the line fails as
// soon as a byte would not fit. Lines without a mnemonic return no words.
func (asm *Assembler) encodeLine(line string, img *Image) (words []string, code []byte, err error) {
	line, _, _ = strings.Cut(line, ";")
	tok := &tokenizer{line: line}

	mnemonic := strings.ToUpper(tok.next(SEP_WORD))
	if len(mnemonic) == 0 {
		return
	}
	words = append(words, mnemonic)

	operand := func(sep string, missing error) (word string, err error) {
		word = tok.next(sep)
		if len(word) == 0 {
			err = missing
			return
		}
		words = append(words, word)
		return
	}

	defer func() {
		if err == nil && asm.Strict && len(tok.next(SEP_OPERAND)) != 0 {
			err = ErrOperandsExtra
		}
		if err != nil {
			code = nil
		}
	}()

	if mnemonic == PAD {
		var word string
		word, err = operand(SEP_WORD, ErrDirectiveOperands)
		if err != nil {
			return
		}

		var padding byte
		padding, err = asm.constant(word)
		if err != nil {
			return
		}

		err = img.Fits(int(padding))
		if err != nil {
			return
		}

		code = make([]byte, padding)
		return
	}

	// Every instruction emits at least one byte.
	err = img.Fits(1)
	if err != nil {
		return
	}

	inst, ok := Lookup(mnemonic)
	if !ok {
		err = ErrMnemonicInvalid
		return
	}

	op := inst.Opcode
	code = []byte{op}

	var word string
	switch inst.Shape {
	case SHAPE_RA_RB:
		word, err = operand(SEP_OPERAND, ErrOperands)
		if err != nil {
			return
		}
		err = InjectRA(word, &op)
		if err != nil {
			return
		}

		word, err = operand(SEP_OPERAND, ErrOperands)
		if err != nil {
			return
		}
		err = InjectRB(word, &op)
		if err != nil {
			return
		}

		code[0] = op
	case SHAPE_RB:
		word, err = operand(SEP_WORD, ErrOperands)
		if err != nil {
			return
		}
		err = InjectRB(word, &op)
		if err != nil {
			return
		}

		code[0] = op
	case SHAPE_RB_K:
		word, err = operand(SEP_OPERAND, ErrOperands)
		if err != nil {
			return
		}
		err = InjectRB(word, &op)
		if err != nil {
			return
		}
		code[0] = op

		err = img.Fits(2)
		if err != nil {
			return
		}

		word, err = operand(SEP_OPERAND, ErrOperands)
		if err != nil {
			return
		}
		var k byte
		k, err = asm.constant(word)
		if err != nil {
			return
		}

		code = append(code, k)
	case SHAPE_K:
		err = img.Fits(2)
		if err != nil {
			return
		}

		word, err = operand(SEP_WORD, ErrOperands)
		if err != nil {
			return
		}
		var k byte
		k, err = asm.constant(word)
		if err != nil {
			return
		}

		code = append(code, k)
	case SHAPE_NONE:
		// No operands.
	}

	return
}

// Parse parses an input stream into a Program containing the image.
// Assembly stops at the first error, which is returned as an *ErrSyntax.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.image.Reset()

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var words []string
		var code []byte
		words, code, err = asm.encodeLine(line, &asm.image)
		if err != nil {
			return
		}

		if len(words) == 0 {
			continue
		}

		addr := asm.image.Len()
		_, err = asm.image.Write(code)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("%02x: % x\n", addr, code)
		}

		asm.Opcode = append(asm.Opcode, Opcode{LineNo: lineno, Addr: addr, Words: words, Bytes: code})
	}

	err = scanner.Err()
	if err != nil {
		line = ""
		lineno += 1
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Image:   asm.image,
	}

	return
}

// Assemble assembles source text into a program image.
func Assemble(input io.Reader) (code []byte, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	code = prog.Binary()
	return
}
