// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"math"
	"strconv"
	"strings"
)

// Range of a one byte constant, covering both signed and unsigned forms.
const (
	CONSTANT_MIN = -128
	CONSTANT_MAX = 255
)

// strtol converts the longest numeric prefix of word, as C strtol(3) does.
// With base 0 the base is taken from the prefix: 0x is hexadecimal, a
// leading 0 is octal, anything else decimal. Out of range values saturate.
// When no digits are found, value is zero and rest is the whole word.
func strtol(word string, base int) (value int64, rest string) {
	rest = word

	n := 0
	for n < len(word) && strings.IndexByte(" \t\n\v\f\r", word[n]) >= 0 {
		n++
	}

	negative := false
	if n < len(word) && (word[n] == '+' || word[n] == '-') {
		negative = word[n] == '-'
		n++
	}

	hasHex := func(at int) bool {
		return at+2 < len(word) && word[at] == '0' &&
			(word[at+1] == 'x' || word[at+1] == 'X') &&
			digitValue(word[at+2]) < 16
	}

	switch {
	case (base == 0 || base == 16) && hasHex(n):
		base = 16
		n += 2
	case base == 0 && n < len(word) && word[n] == '0':
		base = 8
	case base == 0:
		base = 10
	}

	start := n
	for n < len(word) && digitValue(word[n]) < base {
		n++
	}
	if n == start {
		return
	}
	rest = word[n:]

	u, err := strconv.ParseUint(word[start:n], base, 64)
	if err != nil {
		u = math.MaxUint64
	}

	switch {
	case negative && u > 1<<63:
		value = math.MinInt64
	case negative:
		value = -int64(u)
	case u > math.MaxInt64:
		value = math.MaxInt64
	default:
		value = int64(u)
	}

	return
}

// digitValue returns the value of a digit in bases up to 36, or 36 when
// the character is not a digit.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// constantValue parses a constant word. A trailing 'b' selects binary,
// a trailing 'h' hexadecimal, otherwise the base comes from the prefix.
func constantValue(word string, strict bool) (k int64, err error) {
	base := 0
	switch {
	case strings.HasSuffix(word, "b"):
		base = 2
		word = word[:len(word)-1]
	case strings.HasSuffix(word, "h"):
		base = 16
		word = word[:len(word)-1]
	}

	k, rest := strtol(word, base)
	if strict && (len(rest) != 0 || rest == word) {
		err = ErrConstantInvalid
		return
	}

	if k < CONSTANT_MIN || k > CONSTANT_MAX {
		err = ErrOperandSize
		return
	}

	return
}

// ParseConstant parses a one byte constant. Negative values are stored as
// their two's complement. Words that are not numbers parse as zero.
func ParseConstant(word string) (value byte, err error) {
	k, err := constantValue(word, false)
	if err != nil {
		return
	}

	value = byte(k)
	return
}

// ParseConstantStrict parses a one byte constant, rejecting words that are
// not entirely a number.
func ParseConstantStrict(word string) (value byte, err error) {
	k, err := constantValue(word, true)
	if err != nil {
		return
	}

	value = byte(k)
	return
}
