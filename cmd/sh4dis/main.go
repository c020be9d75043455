// Command sh4dis disassembles a flat binary of SH-4 instruction words,
// exercising the same decode table the core uses at runtime.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/retrocore/sh4dc/opcodes"
)

func main() {
	log.SetFlags(0)
	filename := flag.String("f", "", "flat binary file of little-endian instruction words")
	base := flag.Uint("base", 0, "address of the first word, for the printed PC column")
	flag.Parse()
	if *filename == "" {
		log.Fatal("usage: sh4dis -f <binary-file> [-base <addr>]")
	}

	raw, err := os.ReadFile(*filename)
	if err != nil {
		log.Fatal(err)
	}
	if len(raw)%2 != 0 {
		log.Fatalf("sh4dis: %s has an odd length, not a whole number of instruction words", *filename)
	}

	table := opcodes.Global()
	pc := uint32(*base)
	for i := 0; i < len(raw); i += 2 {
		word := binary.LittleEndian.Uint16(raw[i:])
		d := table.Decode(word)
		fmt.Printf("%08x: %04x  %s\n", pc, word, d)
		pc += 2
	}
}
