// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Register is an index into the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0 = Register(0) // r0
	REG_R1 = Register(1) // r1
	REG_R2 = Register(2) // r2
	REG_R3 = Register(3) // r3
)

// registerMap maps register names to registers. Names are case sensitive.
var registerMap = map[string]Register{
	"r0": REG_R0,
	"r1": REG_R1,
	"r2": REG_R2,
	"r3": REG_R3,
}

// ParseRegister returns the register named by word.
func ParseRegister(word string) (reg Register, err error) {
	reg, ok := registerMap[word]
	if !ok {
		err = ErrRegisterInvalid
	}
	return
}

// InjectRA merges the RA register field (bits 2-3) into an opcode.
func InjectRA(word string, op *byte) (err error) {
	reg, err := ParseRegister(word)
	if err != nil {
		return
	}

	*op |= byte(reg) << 2
	return
}

// InjectRB merges the RB register field (bits 0-1) into an opcode.
func InjectRB(word string, op *byte) (err error) {
	reg, err := ParseRegister(word)
	if err != nil {
		return
	}

	*op |= byte(reg)
	return
}

// DecodeRA returns the RA register field of an opcode.
func DecodeRA(op byte) Register {
	return Register((op >> 2) & 3)
}

// DecodeRB returns the RB register field of an opcode.
func DecodeRB(op byte) Register {
	return Register(op & 3)
}
