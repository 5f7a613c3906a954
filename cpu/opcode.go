// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"iter"
	"maps"
	"slices"
)

// IMAGE_SIZE is the addressable memory of the machine, and thus the
// largest program image.
const IMAGE_SIZE = 256

// Shape is the operand combination taken by an instruction.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_RA_RB = Shape(0) // ra,rb
	SHAPE_RB    = Shape(1) // rb
	SHAPE_RB_K  = Shape(2) // rb,k
	SHAPE_K     = Shape(3) // k
	SHAPE_NONE  = Shape(4) // none
)

// Size returns the number of bytes an instruction of this shape encodes to.
func (shape Shape) Size() int {
	switch shape {
	case SHAPE_RB_K, SHAPE_K:
		return 2
	default:
		return 1
	}
}

// Instruction is a single entry of the instruction set.
type Instruction struct {
	Mnemonic string // Upper case mnemonic.
	Opcode   byte   // Opcode base, before register fields are merged in.
	Shape    Shape  // Operands required.
}

// PAD is the padding directive. It is not an instruction.
const PAD = "PAD"

// instructionMap maps upper case mnemonics to instructions.
var instructionMap = makeInstructionMap([]Instruction{
	// Arithmetic and logic
	{"ADD", 0x80, SHAPE_RA_RB},
	{"SHR", 0x90, SHAPE_RA_RB},
	{"SHL", 0xa0, SHAPE_RA_RB},
	{"NOT", 0xb0, SHAPE_RA_RB},
	{"AND", 0xc0, SHAPE_RA_RB},
	{"OR", 0xd0, SHAPE_RA_RB},
	{"XOR", 0xe0, SHAPE_RA_RB},
	{"CMP", 0xf0, SHAPE_RA_RB},

	// Load and store
	{"LD", 0x00, SHAPE_RA_RB},
	{"ST", 0x10, SHAPE_RA_RB},

	// Data
	{"DATA", 0x20, SHAPE_RB_K},

	// Branches
	{"JMPR", 0x30, SHAPE_RB},
	{"JMP", 0x40, SHAPE_K},
	{"JC", 0x58, SHAPE_K},
	{"JA", 0x54, SHAPE_K},
	{"JE", 0x52, SHAPE_K},
	{"JZ", 0x51, SHAPE_K},
	{"JCA", 0x5c, SHAPE_K},
	{"JCE", 0x5a, SHAPE_K},
	{"JCZ", 0x59, SHAPE_K},
	{"JAE", 0x56, SHAPE_K},
	{"JAZ", 0x55, SHAPE_K},
	{"JEZ", 0x53, SHAPE_K},
	{"JCAE", 0x5e, SHAPE_K},
	{"JCAZ", 0x5d, SHAPE_K},
	{"JCEZ", 0x5b, SHAPE_K},
	{"JAEZ", 0x57, SHAPE_K},
	{"JCAEZ", 0x5f, SHAPE_K},

	// Clear flags
	{"CLF", 0x60, SHAPE_NONE},

	// I/O
	{"IND", 0x70, SHAPE_RB},
	{"INA", 0x74, SHAPE_RB},
	{"OUTD", 0x78, SHAPE_RB},
	{"OUTA", 0x7c, SHAPE_RB},
})

func makeInstructionMap(set []Instruction) map[string]Instruction {
	table := make(map[string]Instruction, len(set))
	for _, inst := range set {
		table[inst.Mnemonic] = inst
	}
	return table
}

// Lookup finds the instruction for an upper case mnemonic.
func Lookup(mnemonic string) (inst Instruction, ok bool) {
	inst, ok = instructionMap[mnemonic]
	return
}

// Instructions iterates over the instruction set, ordered by mnemonic.
func Instructions() iter.Seq[Instruction] {
	return func(yield func(inst Instruction) bool) {
		for _, mnemonic := range slices.Sorted(maps.Keys(instructionMap)) {
			if !yield(instructionMap[mnemonic]) {
				return
			}
		}
	}
}
