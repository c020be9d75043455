// Command generator converts opcodes/opcodes.csv into opcodes/definitions.json.
// It is a build-time tool, not part of the core; the core only ever reads
// the already-generated JSON via go:embed. Re-run it after editing the CSV:
//
//	go run ./opcodes/generator -in opcodes/opcodes.csv -out opcodes/definitions.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
)

type definition struct {
	Operator   string `json:"operator"`
	Pattern    string `json:"pattern"`
	Mask       uint16 `json:"mask"`
	Value      uint16 `json:"value"`
	Group      string `json:"group"`
	Issue      uint8  `json:"issue"`
	PCRelative bool   `json:"pc_relative"`
}

func maskValue(pattern string) (mask, value uint16, err error) {
	if len(pattern) != 16 {
		return 0, 0, fmt.Errorf("pattern %q: want 16 bits, got %d", pattern, len(pattern))
	}
	for _, ch := range pattern {
		mask <<= 1
		value <<= 1
		switch ch {
		case '1':
			mask |= 1
			value |= 1
		case '0':
			mask |= 1
		default:
			// register/immediate/displacement field bit: don't-care.
		}
	}
	return mask, value, nil
}

func main() {
	in := flag.String("in", "opcodes.csv", "input CSV path")
	out := flag.String("out", "definitions.json", "output JSON path")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var defs []definition
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		mask, value, err := maskValue(row[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		issue, err := strconv.Atoi(row[5])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pcRelative, err := strconv.ParseBool(row[6])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defs = append(defs, definition{
			Operator:   row[0],
			Pattern:    row[1],
			Mask:       mask,
			Value:      value,
			Group:      row[4],
			Issue:      uint8(issue),
			PCRelative: pcRelative,
		})
	}

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer outFile.Close()

	enc := json.NewEncoder(outFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(defs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
