package cpu

import (
	"strconv"
	"strings"
	"testing"
)

func FuzzAssembler(f *testing.F) {
	for _, seed := range []string{
		"ADD r0, r1",
		"DATA r3, 0xff",
		"JCAEZ 11111111b",
		"PAD 3",
		"pad -1",
		"ld r0 r1 ; comment",
		"JMP 10h, junk",
		"OUTA",
		"",
	} {
		f.Add(seed, false)
		f.Add(seed, true)
	}

	f.Fuzz(func(t *testing.T, line string, strict bool) {
		asm := &Assembler{Strict: strict}
		prog, err := asm.Parse(strings.NewReader(line))
		if err != nil {
			if prog != nil {
				t.Fatalf("%q: program returned with error %v", line, err)
			}
			return
		}

		size := prog.Image.Len()
		if size > IMAGE_SIZE {
			t.Fatalf("%q: image size %d", line, size)
		}

		addr := 0
		for _, op := range prog.Opcodes {
			if op.Addr != addr {
				t.Fatalf("%q: opcode at %d, expected %d", line, op.Addr, addr)
			}
			addr += len(op.Bytes)
		}
		if addr != size {
			t.Fatalf("%q: opcodes cover %d bytes, image has %d", line, addr, size)
		}
	})
}

func FuzzConstant(f *testing.F) {
	for _, seed := range []int{0, 1, -1, 127, -128, 255, 256, -129} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, k int) {
		words := []string{
			strconv.Itoa(k),
			strconv.FormatInt(int64(k), 2) + "b",
			strconv.FormatInt(int64(k), 16) + "h",
		}

		for _, word := range words {
			value, err := ParseConstantStrict(word)
			if k < CONSTANT_MIN || k > CONSTANT_MAX {
				if err == nil {
					t.Fatalf("%q: out of range value accepted", word)
				}
				continue
			}
			if err != nil {
				t.Fatalf("%q: %v", word, err)
			}
			if value != byte(k) {
				t.Fatalf("%q: got %#02x, expected %#02x", word, value, byte(k))
			}
		}
	})
}
