// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/sca/cpu"
	"github.com/ezrec/sca/io"
)

// Device addresses of the emulator's built-in devices.
const (
	DEVICE_TAPE      = byte(0) // Tape I/O.
	DEVICE_TEMPORARY = byte(1) // Temporary FIFO storage.
)

// TEMPORARY_SIZE is the capacity of the temporary storage device.
const TEMPORARY_SIZE = 256

// Emulator state. CPU + program + I/O devices.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape      io.Tape      // Tape device.
	Temporary io.Temporary // Temporary storage device.

	MaxTicks int // If non-zero, the maximum number of ticks to execute.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Temporary.Capacity = TEMPORARY_SIZE

	emu.Cpu.SetDevice(DEVICE_TAPE, &emu.Tape)
	emu.Cpu.SetDevice(DEVICE_TEMPORARY, &emu.Temporary)

	return
}

// Reset loads the program into memory and resets the CPU and its devices.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Reset(emu.Program.Binary())
	return
}

// Code returns the text of the instruction at the current IP.
func (emu *Emulator) Code() (text string) {
	text, _ = cpu.Decode(emu.Cpu.Memory[emu.Cpu.Ip:])
	return
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(int(emu.Cpu.Ip))
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator. Execution is done when the IP
// leaves the program image, or when the program jumps to itself.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if int(emu.Cpu.Ip) >= emu.Program.Image.Len() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.MaxTicks != 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	if emu.Cpu.Idle {
		if emu.Verbose {
			log.Printf("emulator: idle at %02x", emu.Cpu.Ip)
		}
		done = true
	}

	return
}

// Run executes the program until it is done, or fails.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}
