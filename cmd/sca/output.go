// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"path/filepath"
	"strings"
)

// BINARY_EXT is the extension of assembled images.
const BINARY_EXT = ".bin"

// outputName returns the image file name for a source file: the source name
// with its extension replaced, or appended when it has none.
func outputName(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + BINARY_EXT
}
