// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"io"
)

// Tape provides sequential byte I/O over an io.Reader for input and an
// io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Device = (*Tape)(nil)

// Reset is not possible on a tape.
func (tc *Tape) Reset() {
}

// ReadByte reads the next byte of the input stream.
func (tc *Tape) ReadByte() (value byte, err error) {
	if tc.Input == nil {
		err = ErrTapeMissing
		return
	}

	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if err != nil {
		err = ErrTapeEmpty
		return
	}

	value = one[0]
	return
}

// WriteByte writes a byte to the output stream.
func (tc *Tape) WriteByte(value byte) (err error) {
	if tc.Output == nil {
		err = ErrTapeMissing
		return
	}

	_, err = tc.Output.Write([]byte{value})
	return
}
