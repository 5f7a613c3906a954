// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/sca/io"
)

// Device is an I/O device interface.
type Device io.Device

// Flag is a set of ALU condition flags. The bit layout matches the
// condition field of the conditional jump opcodes.
type Flag byte

const (
	FLAG_Z = Flag(1 << 0) // Result was zero.
	FLAG_E = Flag(1 << 1) // Operands were equal.
	FLAG_A = Flag(1 << 2) // First operand was larger.
	FLAG_C = Flag(1 << 3) // Carry out.
)

// String returns the flags as "CAEZ", with '-' for clear flags.
func (fl Flag) String() string {
	var sb strings.Builder
	for n, name := range "CAEZ" {
		if fl&(FLAG_C>>n) != 0 {
			sb.WriteRune(name)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// ALU operations, selected by bits 4-6 of an ALU opcode.
const (
	ALU_OP_ADD = 0
	ALU_OP_SHR = 1
	ALU_OP_SHL = 2
	ALU_OP_NOT = 3
	ALU_OP_AND = 4
	ALU_OP_OR  = 5
	ALU_OP_XOR = 6
	ALU_OP_CMP = 7
)

// Cpu is the simulation context for the 8-bit CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   [IMAGE_SIZE]byte // Program and data memory.
	Register [4]byte          // Register bank.
	Ip       byte             // Instruction pointer.
	Flags    Flag             // ALU flags.
	Selected byte             // Address of the selected I/O device.
	Idle     bool             // Set when the last instruction jumped to itself.

	Ticks int // CPU ticks counter.

	device map[byte]Device // IO devices, by address.
}

// NewCpu creates a new CPU with no devices attached.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		device: make(map[byte]Device),
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02x\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %v\n", "flags", cpu.Flags)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02x\n", Register(n), val)
	}
	text += fmt.Sprintf("% 5s: %02x\n", "io", cpu.Selected)

	return
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Zeros statistics counters.
// - Resets all IO devices.
// - Loads the image into memory, and sets the IP to zero.
func (cpu *Cpu) Reset(image []byte) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	if len(image) > IMAGE_SIZE {
		err = ErrImageFull
		return
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	copy(cpu.Memory[:], image)
	cpu.Ip = 0
	cpu.Flags = 0
	cpu.Selected = 0
	cpu.Idle = false
	cpu.Ticks = 0

	for _, dev := range cpu.device {
		dev.Reset()
	}

	return
}

// SetDevice attaches a device to an I/O address. A nil device detaches.
func (cpu *Cpu) SetDevice(addr byte, dev Device) {
	if dev == nil {
		delete(cpu.device, addr)
		return
	}

	if cpu.device == nil {
		cpu.device = make(map[byte]Device)
	}
	cpu.device[addr] = dev
}

// GetDevice gets the device at an I/O address.
func (cpu *Cpu) GetDevice(addr byte) (dev Device, err error) {
	dev, ok := cpu.device[addr]
	if !ok {
		err = &ErrDevice{Address: addr, Err: ErrDeviceMissing}
	}
	return
}

// fetch reads the byte at the IP, and advances it.
func (cpu *Cpu) fetch() (value byte) {
	value = cpu.Memory[cpu.Ip]
	cpu.Ip++
	return
}

// alu executes an ALU operation, and updates the flags.
func (cpu *Cpu) alu(op byte, ra, rb Register) {
	a := cpu.Register[ra]
	b := cpu.Register[rb]

	var carryIn byte
	if cpu.Flags&FLAG_C != 0 {
		carryIn = 1
	}

	var result byte
	var carry bool
	switch op {
	case ALU_OP_ADD:
		sum := uint16(a) + uint16(b) + uint16(carryIn)
		result = byte(sum)
		carry = sum > 0xff
	case ALU_OP_SHR:
		result = (a >> 1) | (carryIn << 7)
		carry = a&0x01 != 0
	case ALU_OP_SHL:
		result = (a << 1) | carryIn
		carry = a&0x80 != 0
	case ALU_OP_NOT:
		result = ^a
	case ALU_OP_AND:
		result = a & b
	case ALU_OP_OR:
		result = a | b
	case ALU_OP_XOR, ALU_OP_CMP:
		result = a ^ b
	}

	cpu.Flags = 0
	if carry {
		cpu.Flags |= FLAG_C
	}
	if a > b {
		cpu.Flags |= FLAG_A
	}
	if a == b {
		cpu.Flags |= FLAG_E
	}
	if result == 0 {
		cpu.Flags |= FLAG_Z
	}

	if op != ALU_OP_CMP {
		cpu.Register[rb] = result
	}
}

// jump sets the IP, noting jumps to the jumping instruction itself.
func (cpu *Cpu) jump(from, to byte) {
	cpu.Ip = to
	cpu.Idle = from == to
}

// Tick executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	ip := cpu.Ip

	if cpu.Verbose {
		text, _ := Decode([]byte{cpu.Memory[ip], cpu.Memory[ip+1]})
		log.Printf("cpu: %02x: %v", ip, text)
	}

	cpu.Ticks++
	cpu.Idle = false

	op := cpu.fetch()
	ra := DecodeRA(op)
	rb := DecodeRB(op)

	switch op >> 4 {
	case 0x0: // LD
		cpu.Register[rb] = cpu.Memory[cpu.Register[ra]]
	case 0x1: // ST
		cpu.Memory[cpu.Register[ra]] = cpu.Register[rb]
	case 0x2: // DATA
		cpu.Register[rb] = cpu.fetch()
	case 0x3: // JMPR
		cpu.jump(ip, cpu.Register[rb])
	case 0x4: // JMP
		cpu.jump(ip, cpu.fetch())
	case 0x5: // Jcaez
		target := cpu.fetch()
		if cpu.Flags&Flag(op&0xf) != 0 {
			cpu.jump(ip, target)
		}
	case 0x6: // CLF
		cpu.Flags = 0
	case 0x7: // IN/OUT
		err = cpu.transfer(op, rb)
	default:
		cpu.alu((op>>4)&7, ra, rb)
	}

	if cpu.Verbose && err == nil {
		log.Printf("cpu: flags %v regs % x", cpu.Flags, cpu.Register)
	}

	return
}

// transfer executes an I/O instruction. Bit 3 selects output, bit 2 selects an
// address transfer rather than a data transfer.
func (cpu *Cpu) transfer(op byte, rb Register) (err error) {
	output := op&0x08 != 0
	address := op&0x04 != 0

	switch {
	case output && address:
		cpu.Selected = cpu.Register[rb]
		return
	case address:
		cpu.Register[rb] = cpu.Selected
		return
	}

	dev, err := cpu.GetDevice(cpu.Selected)
	if err != nil {
		return
	}

	if output {
		err = dev.WriteByte(cpu.Register[rb])
	} else {
		cpu.Register[rb], err = dev.ReadByte()
	}

	if err != nil {
		err = &ErrDevice{Address: cpu.Selected, Err: err}
	}

	return
}
