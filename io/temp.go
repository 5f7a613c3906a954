// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

// Temporary implements a circular buffer for temporary byte storage.
// It operates as a FIFO queue with a fixed capacity and separate read/write positions.
type Temporary struct {
	Capacity int // Capacity in bytes.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []byte
}

var _ Device = (*Temporary)(nil)

// Reset empties the temporary storage, resetting indices and
// reinitializing the data buffer.
func (temp *Temporary) Reset() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]byte, temp.Capacity)
}

// ReadByte removes the oldest byte from the buffer.
func (temp *Temporary) ReadByte() (value byte, err error) {
	if temp.Size == 0 {
		err = ErrTemporaryEmpty
		return
	}

	value = temp.Data[temp.ReadIndex]
	temp.ReadIndex++
	if temp.ReadIndex == temp.Capacity {
		temp.ReadIndex = 0
	}
	temp.Size--

	return
}

// WriteByte appends a byte to the buffer.
// Returns ErrTemporaryFull if the buffer has reached capacity.
func (temp *Temporary) WriteByte(value byte) (err error) {
	if temp.Size >= temp.Capacity || len(temp.Data) != temp.Capacity {
		err = ErrTemporaryFull
		return
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == temp.Capacity {
		temp.WriteIndex = 0
	}
	temp.Size++

	return
}
