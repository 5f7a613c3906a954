// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io provides the byte-wide I/O devices of the emulator.
// It includes sequential stream I/O (Tape) and a FIFO scratch
// buffer (Temporary).
package io

// Device is a peripheral on the CPU I/O bus. The CPU selects a device by
// address, then transfers single bytes with it.
type Device interface {
	// Reset returns the device to its power-on state.
	Reset()
	// ReadByte reads the next byte from the device.
	ReadByte() (value byte, err error)
	// WriteByte writes a byte to the device.
	WriteByte(value byte) error
}
