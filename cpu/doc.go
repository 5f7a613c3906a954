// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements the microprocessor and assembler for an 8-bit CPU.
//
// The CPU has four 8-bit general-purpose registers (r0-r3), a 256 byte
// memory shared by program and data, an ALU with carry, a-larger, equal and
// zero flags, and a byte-wide I/O bus. Every opcode is a single byte, with
// register operands packed into its low nibble; instructions taking a
// constant are followed by one constant byte.
//
// The assembler is single pass: each source line encodes directly into a
// 256 byte program image. It has no labels or macros. The only directive
// is PAD, which zero fills part of the image.
package cpu
