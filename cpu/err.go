// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/sca/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrRegisterInvalid   = errors.New(f("Invalid register"))
	ErrOperandSize       = errors.New(f("Invalid operand size (constant must fit in one byte)"))
	ErrImageFull         = errors.New(f("Resulting file too large - output file size limit: %d bytes", IMAGE_SIZE))
	ErrDirectiveOperands = errors.New(f("Invalid combination of operands for directive"))
	ErrOperands          = errors.New(f("Invalid combination of operands"))
	ErrMnemonicInvalid   = errors.New(f("Invalid instruction mnemonic"))

	// Strict mode errors
	ErrConstantInvalid = errors.New(f("Invalid constant"))
	ErrOperandsExtra   = errors.New(f("Excessive operands"))

	// Cpu errors
	ErrDeviceMissing = errors.New(f("no device selected"))
)

// ErrSyntax locates an assembler error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	// Line numbers are not locale formatted, they must match editor positions.
	return f("%s: %v", strconv.Itoa(err.LineNo), err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrDevice reports a failure of the device at an I/O address.
type ErrDevice struct {
	Address byte
	Err     error
}

func (err *ErrDevice) Error() string {
	return f("device 0x%02x %v", err.Address, err.Err)
}

func (err *ErrDevice) Unwrap() error {
	return err.Err
}
