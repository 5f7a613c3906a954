package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage_Write(t *testing.T) {
	assert := assert.New(t)

	img := &Image{}
	assert.Equal(0, img.Len())
	assert.Equal(IMAGE_SIZE, img.Free())

	n, err := img.Write([]byte{1, 2, 3})
	assert.NoError(err)
	assert.Equal(3, n)
	assert.Equal([]byte{1, 2, 3}, img.Bytes())

	n, err = img.Write(make([]byte, IMAGE_SIZE-3))
	assert.NoError(err)
	assert.Equal(IMAGE_SIZE-3, n)
	assert.Equal(0, img.Free())

	n, err = img.Write(nil)
	assert.NoError(err)
	assert.Equal(0, n)
}

func TestImage_WriteAtomic(t *testing.T) {
	assert := assert.New(t)

	img := &Image{}
	_, err := img.Write(make([]byte, IMAGE_SIZE-1))
	assert.NoError(err)

	n, err := img.Write([]byte{0xaa, 0xbb})
	assert.ErrorIs(err, ErrImageFull)
	assert.Equal(0, n)
	assert.Equal(IMAGE_SIZE-1, img.Len())

	_, err = fmt.Fprint(img, "xy")
	assert.ErrorIs(err, ErrImageFull)
	assert.Equal(IMAGE_SIZE-1, img.Len())

	n, err = img.Write([]byte{0xcc})
	assert.NoError(err)
	assert.Equal(1, n)
	assert.Equal(byte(0xcc), img.Bytes()[IMAGE_SIZE-1])
}

func TestImage_Fits(t *testing.T) {
	assert := assert.New(t)

	img := &Image{}
	assert.NoError(img.Fits(0))
	assert.NoError(img.Fits(IMAGE_SIZE))
	assert.ErrorIs(img.Fits(IMAGE_SIZE+1), ErrImageFull)
	assert.ErrorIs(img.Fits(-1), ErrImageFull)
}

func TestImage_Reset(t *testing.T) {
	assert := assert.New(t)

	img := &Image{}
	_, err := img.Write([]byte{1, 2, 3})
	assert.NoError(err)

	img.Reset()
	assert.Equal(0, img.Len())

	_, err = img.Write(make([]byte, 3))
	assert.NoError(err)
	assert.Equal([]byte{0, 0, 0}, img.Bytes())
}
