// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode is a line of assembled source with the bytes it generated.
type Opcode struct {
	LineNo int      // Source line number.
	Addr   int      // Address of the first byte.
	Words  []string // Mnemonic (upper cased) and operands.
	Bytes  []byte   // Encoded bytes.
}

// Program is an assembled program.
type Program struct {
	Opcodes []Opcode
	Image   Image
}

// Debug locates an address within a program.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode containing addr, and the index of addr within
// its bytes. The Opcode is nil if no source line generated addr.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Addr,
			}
			break
		}
	}

	return
}

// Binary returns a copy of the program image.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, prog.Image.Len())
	copy(bin, prog.Image.Bytes())
	return
}

// Codes iterates over the address and value of every byte in the image.
func (prog *Program) Codes() iter.Seq2[int, byte] {
	return func(yield func(addr int, code byte) bool) {
		for addr, code := range prog.Image.Bytes() {
			if !yield(addr, code) {
				return
			}
		}
	}
}

// Listing writes the address, bytes and decoded text of every opcode.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		var hex, text string
		if op.Words[0] == PAD {
			hex = fmt.Sprintf("00*%d", len(op.Bytes))
			text = strings.Join(op.Words, " ")
		} else {
			hex = fmt.Sprintf("% x", op.Bytes)
			text, _ = Decode(op.Bytes)
		}

		_, err = fmt.Fprintf(w, "%02x  %-6s %-16s ; %d: %s\n",
			op.Addr, hex, text, op.LineNo, strings.Join(op.Words, " "))
		if err != nil {
			return
		}
	}

	return
}
