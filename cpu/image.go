// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"io"
)

// Image is a program image of at most IMAGE_SIZE bytes.
type Image struct {
	data [IMAGE_SIZE]byte
	size int
}

var _ io.Writer = (*Image)(nil)

// Len returns the number of bytes written.
func (img *Image) Len() int {
	return img.size
}

// Free returns the number of bytes that can still be written.
func (img *Image) Free() int {
	return IMAGE_SIZE - img.size
}

// Fits checks that n more bytes can be written.
func (img *Image) Fits(n int) (err error) {
	if n < 0 || n > img.Free() {
		err = ErrImageFull
	}
	return
}

// Write appends code to the image. Either all of code is written, or none
// of it and ErrImageFull is returned.
func (img *Image) Write(code []byte) (n int, err error) {
	err = img.Fits(len(code))
	if err != nil {
		return
	}

	n = copy(img.data[img.size:], code)
	img.size += n
	return
}

// Bytes returns the written part of the image.
func (img *Image) Bytes() []byte {
	return img.data[:img.size]
}

// Reset empties the image.
func (img *Image) Reset() {
	clear(img.data[:])
	img.size = 0
}
