// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"

	"github.com/ezrec/sca/translate"
)

var f = translate.From

var (
	// Device errors
	ErrTapeEmpty      = errors.New(f("tape empty"))
	ErrTapeMissing    = errors.New(f("tape missing"))
	ErrTemporaryFull  = errors.New(f("temporary full"))
	ErrTemporaryEmpty = errors.New(f("temporary empty"))
)
