package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInjectRA(t *testing.T) {
	assert := assert.New(t)

	expected := map[string]byte{"r0": 0x00, "r1": 0x04, "r2": 0x08, "r3": 0x0c}
	for word, bits := range expected {
		op := byte(0x80)
		assert.NoError(InjectRA(word, &op), word)
		assert.Equal(0x80|bits, op, word)

		// Only ORs, so injecting twice changes nothing.
		assert.NoError(InjectRA(word, &op), word)
		assert.Equal(0x80|bits, op, word)
	}
}

func TestInjectRB(t *testing.T) {
	assert := assert.New(t)

	expected := map[string]byte{"r0": 0x00, "r1": 0x01, "r2": 0x02, "r3": 0x03}
	for word, bits := range expected {
		op := byte(0x7c)
		assert.NoError(InjectRB(word, &op), word)
		assert.Equal(0x7c|bits, op, word)
	}
}

func TestInject_Disjoint(t *testing.T) {
	assert := assert.New(t)

	seen := map[byte]string{}
	for ra := range registerMap {
		for rb := range registerMap {
			op := byte(0)
			assert.NoError(InjectRA(ra, &op))
			assert.NoError(InjectRB(rb, &op))

			other, dup := seen[op]
			assert.False(dup, "%v,%v collides with %v", ra, rb, other)
			seen[op] = ra + "," + rb

			assert.Equal(ra, DecodeRA(op).String())
			assert.Equal(rb, DecodeRB(op).String())
		}
	}

	assert.Len(seen, 16)
}

func TestInject_Invalid(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []string{"", "r4", "R1", "r", "r01", "x", " r1", "r1,"} {
		op := byte(0x55)
		assert.ErrorIs(InjectRA(word, &op), ErrRegisterInvalid, word)
		assert.ErrorIs(InjectRB(word, &op), ErrRegisterInvalid, word)
		assert.Equal(byte(0x55), op, word)
	}
}

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("r0", REG_R0.String())
	assert.Equal("r3", REG_R3.String())
	assert.Equal("Register(4)", Register(4).String())
	assert.Equal("ra,rb", SHAPE_RA_RB.String())
	assert.Equal("none", SHAPE_NONE.String())
}
