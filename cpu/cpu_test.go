package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sca/io"
)

func runProgram(t *testing.T, cpu *Cpu, source string, ticks int) {
	t.Helper()

	code, err := Assemble(strings.NewReader(source))
	if err != nil {
		t.Fatal(err)
	}

	err = cpu.Reset(code)
	if err != nil {
		t.Fatal(err)
	}

	for range ticks {
		err = cpu.Tick()
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestCpu_Alu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     string
		a, b   byte
		carry  bool
		result byte
		flags  Flag
	}){
		{"add", "ADD", 3, 4, false, 7, 0},
		{"add_carry_in", "ADD", 3, 4, true, 8, 0},
		{"add_carry_out", "ADD", 0x80, 0x80, false, 0x00, FLAG_C | FLAG_E | FLAG_Z},
		{"shr", "SHR", 0x03, 0, false, 0x01, FLAG_C | FLAG_A},
		{"shr_carry_in", "SHR", 0x02, 0, true, 0x81, FLAG_A},
		{"shl", "SHL", 0x81, 0, false, 0x02, FLAG_C | FLAG_A},
		{"not", "NOT", 0x0f, 0x0f, false, 0xf0, FLAG_E},
		{"and", "AND", 0x0c, 0x0a, false, 0x08, FLAG_A},
		{"or", "OR", 0x0c, 0x0a, false, 0x0e, FLAG_A},
		{"xor", "XOR", 0x0c, 0x0c, false, 0x00, FLAG_E | FLAG_Z},
		{"cmp_less", "CMP", 1, 2, false, 2, 0},
		{"cmp_more", "CMP", 2, 1, false, 1, FLAG_A},
	}

	for _, entry := range table {
		cpu := NewCpu()
		runProgram(t, cpu, entry.op+" r0, r1", 0)

		cpu.Register[0] = entry.a
		cpu.Register[1] = entry.b
		if entry.carry {
			cpu.Flags = FLAG_C
		}

		assert.NoError(cpu.Tick(), entry.name)
		assert.Equal(entry.result, cpu.Register[1], entry.name)
		assert.Equal(entry.a, cpu.Register[0], entry.name)
		assert.Equal(entry.flags, cpu.Flags, entry.name+" "+cpu.Flags.String())
	}
}

func TestCpu_LoadStore(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	runProgram(t, cpu, strings.Join([]string{
		"DATA r0, 80h", // r0 = 0x80
		"DATA r1, 42",  // r1 = 42
		"ST r0, r1",    // [0x80] = 42
		"LD r0, r2",    // r2 = [0x80]
		"LD r3, r3",    // r3 = [0] = 0x20
	}, "\n"), 5)

	assert.Equal(byte(42), cpu.Memory[0x80])
	assert.Equal(byte(42), cpu.Register[2])
	assert.Equal(byte(0x20), cpu.Register[3])
	assert.Equal(byte(7), cpu.Ip)
	assert.Equal(5, cpu.Ticks)
}

func TestCpu_Jumps(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	runProgram(t, cpu, strings.Join([]string{
		"DATA r0, 1", // 00
		"DATA r1, 1", // 02
		"CMP r0, r1", // 04: E, Z
		"JA 0",       // 05: not taken
		"JE 0bh",     // 07: taken
		"CLF",        // 09
		"CLF",        // 0a
		"CLF",        // 0b
		"JMP 0ch",    // 0c: idle
	}, "\n"), 5)

	assert.Equal(byte(0x0b), cpu.Ip)
	assert.False(cpu.Idle)
	assert.Equal(FLAG_E|FLAG_Z, cpu.Flags)

	assert.NoError(cpu.Tick())
	assert.Equal(Flag(0), cpu.Flags)

	assert.NoError(cpu.Tick())
	assert.Equal(byte(0x0c), cpu.Ip)
	assert.True(cpu.Idle)
}

func TestCpu_JumpRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	runProgram(t, cpu, "DATA r2, 40h\nJMPR r2", 2)

	assert.Equal(byte(0x40), cpu.Ip)
	assert.False(cpu.Idle)
}

func TestCpu_Io(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &io.Tape{Input: strings.NewReader("AB"), Output: output}

	cpu := NewCpu()
	cpu.SetDevice(3, tape)

	runProgram(t, cpu, strings.Join([]string{
		"DATA r0, 3",
		"OUTA r0",
		"IND r1",
		"IND r2",
		"OUTD r2",
		"OUTD r1",
		"INA r3",
	}, "\n"), 7)

	assert.Equal("BA", output.String())
	assert.Equal(byte(3), cpu.Selected)
	assert.Equal(byte(3), cpu.Register[3])

	cpu.Ip = 3
	err := cpu.Tick()
	assert.ErrorIs(err, io.ErrTapeEmpty)

	var de *ErrDevice
	if assert.ErrorAs(err, &de) {
		assert.Equal(byte(3), de.Address)
	}
}

func TestCpu_DeviceMissing(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	runProgram(t, cpu, "OUTD r0", 0)

	err := cpu.Tick()
	assert.ErrorIs(err, ErrDeviceMissing)
	assert.EqualError(err, "device 0x00 no device selected")

	cpu.SetDevice(0, &io.Tape{Output: &bytes.Buffer{}})
	cpu.Ip = 0
	assert.NoError(cpu.Tick())

	cpu.SetDevice(0, nil)
	_, err = cpu.GetDevice(0)
	assert.ErrorIs(err, ErrDeviceMissing)
}

func TestCpu_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[1] = 5
	cpu.Flags = FLAG_C
	cpu.Memory[10] = 1

	assert.NoError(cpu.Reset([]byte{0x60}))
	assert.Equal([4]byte{}, cpu.Register)
	assert.Equal(Flag(0), cpu.Flags)
	assert.Equal(byte(0x60), cpu.Memory[0])
	assert.Equal(byte(0), cpu.Memory[10])

	assert.ErrorIs(cpu.Reset(make([]byte, IMAGE_SIZE+1)), ErrImageFull)
}

func TestFlag_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("----", Flag(0).String())
	assert.Equal("CAEZ", (FLAG_C | FLAG_A | FLAG_E | FLAG_Z).String())
	assert.Equal("C--Z", (FLAG_C | FLAG_Z).String())
	assert.Equal("-A--", FLAG_A.String())
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[2] = 0xab

	text := cpu.String()
	assert.Contains(text, "   ip: 00\n")
	assert.Contains(text, "flags: ----\n")
	assert.Contains(text, "   r2: ab\n")
}
