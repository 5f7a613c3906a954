// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Decode tables, keyed by the opcode bits not used by register fields.
var (
	decodeRaRb  = map[byte]Instruction{} // opcode & 0xf0
	decodeRb    = map[byte]Instruction{} // opcode & 0xfc
	decodeExact = map[byte]Instruction{} // opcode
)

func init() {
	for inst := range Instructions() {
		switch inst.Shape {
		case SHAPE_RA_RB:
			decodeRaRb[inst.Opcode] = inst
		case SHAPE_RB, SHAPE_RB_K:
			decodeRb[inst.Opcode] = inst
		default:
			decodeExact[inst.Opcode] = inst
		}
	}
}

// DecodeInstruction finds the instruction an opcode byte belongs to.
func DecodeInstruction(op byte) (inst Instruction, ok bool) {
	if inst, ok = decodeRaRb[op&0xf0]; ok {
		return
	}
	if inst, ok = decodeRb[op&0xfc]; ok {
		return
	}
	inst, ok = decodeExact[op]
	return
}

// Decode returns the assembly text of the instruction at the start of code,
// and the number of bytes it occupies. Bytes that are not an instruction
// decode as a one byte .byte directive.
func Decode(code []byte) (text string, size int) {
	if len(code) == 0 {
		return
	}

	op := code[0]
	size = 1

	inst, ok := DecodeInstruction(op)
	if !ok {
		text = fmt.Sprintf(".byte 0x%02x", op)
		return
	}

	k := "?"
	if inst.Shape.Size() == 2 && len(code) > 1 {
		k = fmt.Sprintf("0x%02x", code[1])
		size = 2
	}

	switch inst.Shape {
	case SHAPE_RA_RB:
		text = fmt.Sprintf("%v %v, %v", inst.Mnemonic, DecodeRA(op), DecodeRB(op))
	case SHAPE_RB:
		text = fmt.Sprintf("%v %v", inst.Mnemonic, DecodeRB(op))
	case SHAPE_RB_K:
		text = fmt.Sprintf("%v %v, %v", inst.Mnemonic, DecodeRB(op), k)
	case SHAPE_K:
		text = fmt.Sprintf("%v %v", inst.Mnemonic, k)
	case SHAPE_NONE:
		text = inst.Mnemonic
	}

	return
}
