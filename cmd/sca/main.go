// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/sca/cpu"
	"github.com/ezrec/sca/emulator"
)

func main() {
	var output string
	var listing bool
	var strict bool
	var verbose bool
	var run bool
	var tapeIn string
	var tapeOut string
	var maxTicks int

	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] <file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&output, "o", "", "Output image (default: source with .bin extension)")
	flag.BoolVar(&listing, "l", false, "Print a listing")
	flag.BoolVar(&strict, "strict", false, "Reject malformed constants and excess operands")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&run, "run", false, "Execute the image on the emulator")
	flag.StringVar(&tapeIn, "i", "-", "Tape input, when running")
	flag.StringVar(&tapeOut, "t", "-", "Tape output, when running")
	flag.IntVar(&maxTicks, "max-ticks", 0, "Maximum ticks to run (0 is unlimited)")

	flag.Parse()

	switch flag.NArg() {
	case 0:
		log.Fatal("Please pass a file to the assembler")
	case 1:
	default:
		log.Fatal("Invalid number of arguments")
	}

	source := flag.Arg(0)
	if len(output) == 0 {
		output = outputName(source)
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("Could not open %q: %v", source, err)
	}

	asm := &cpu.Assembler{Verbose: verbose, Strict: strict}
	prog, err := asm.Parse(inf)
	inf.Close()
	if err != nil {
		// Remove any stale image, so it is not run by accident.
		os.Remove(output)
		log.Fatalf("Error: %v:%v", source, err)
	}

	if listing {
		err = prog.Listing(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
	}

	if prog.Image.Len() == 0 {
		fmt.Println("Warning: no output generated from input file")
		return
	}

	err = os.WriteFile(output, prog.Binary(), 0o644)
	if err != nil {
		log.Fatalf("Could not create %q: %v", output, err)
	}

	if !run {
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.MaxTicks = maxTicks

	if tapeIn == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(tapeIn)
		if err != nil {
			log.Fatalf("%v: %v", tapeIn, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if tapeOut == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(tapeOut)
		if err != nil {
			log.Fatalf("%v: %v", tapeOut, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v:%v", source, err)
	}

	if verbose {
		log.Printf("%v", emu.Cpu)
	}
}
