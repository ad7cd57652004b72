//
// parser.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseFile parses the circuit description file.
func ParseFile(path string) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening circuit %s", path)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}

// Parse parses the circuit description from the input. The input
// consists of two header lines followed by one line per gate:
//
//	<#gates> <#AND> <#XOR> <#INV>
//	<#wires> <#garbler inputs> <#evaluator inputs> <#outputs>
//	AND <in0> <in1> <out>
//	XOR <in0> <in1> <out>
//	INV <in> <out>
//
// Parse does not check that the gates are in topological order or
// that the header counts match the gates; see Circuit.Validate.
func Parse(in io.Reader) (*Circuit, error) {
	r := &lineReader{
		r: bufio.NewReader(in),
	}

	// #gates #AND #XOR #INV
	hdr, err := r.header("gate counts")
	if err != nil {
		return nil, err
	}
	c := &Circuit{
		NumGates: hdr[0],
		NumAND:   hdr[1],
		NumXOR:   hdr[2],
		NumINV:   hdr[3],
	}

	// #wires #garbler #evaluator #outputs
	hdr, err = r.header("wire counts")
	if err != nil {
		return nil, err
	}
	c.NumWires = hdr[0]
	c.GarblerInputs = hdr[1]
	c.EvaluatorInputs = hdr[2]
	c.NumOutputs = hdr[3]

	c.Gates = make([]Gate, 0, c.NumGates)

	for i := 0; i < c.NumGates; i++ {
		line, err := r.readLine()
		if err != nil {
			if err == io.EOF {
				return nil, parseError(r.line, "",
					"unexpected end of circuit after %d gates, expected %d",
					i, c.NumGates)
			}
			return nil, err
		}
		gate, err := parseGate(r.line, line)
		if err != nil {
			return nil, err
		}
		c.Gates = append(c.Gates, gate)
	}

	return c, nil
}

func parseGate(lineNum int, line []string) (Gate, error) {
	var gate Gate
	var arity int

	switch line[0] {
	case "AND":
		gate.Op = AND
		arity = 2
	case "XOR":
		gate.Op = XOR
		arity = 2
	case "INV":
		gate.Op = INV
		arity = 1
	default:
		return gate, parseError(lineNum, line[0],
			"unknown gate operation %q", line[0])
	}
	if len(line) < 2+arity {
		return gate, parseError(lineNum, line[0],
			"%s: expected %d wires, got %d", line[0], arity+1, len(line)-1)
	}
	if len(line) > 2+arity {
		return gate, parseError(lineNum, line[2+arity],
			"%s: unexpected token %q", line[0], line[2+arity])
	}

	var wires [3]Wire
	for i := 1; i < len(line); i++ {
		v, err := strconv.ParseUint(line[i], 10, 32)
		if err != nil {
			return gate, parseError(lineNum, line[i],
				"%s: invalid wire %q", line[0], line[i])
		}
		wires[i-1] = Wire(v)
	}
	gate.Input0 = wires[0]
	if arity == 2 {
		gate.Input1 = wires[1]
	}
	gate.Output = wires[arity]

	return gate, nil
}

type lineReader struct {
	r    *bufio.Reader
	line int
}

func (r *lineReader) header(name string) ([]int, error) {
	line, err := r.readLine()
	if err != nil {
		if err == io.EOF {
			return nil, parseError(r.line, "", "missing %s line", name)
		}
		return nil, err
	}
	if len(line) != 4 {
		return nil, parseError(r.line, "",
			"invalid %s line: expected 4 fields, got %d", name, len(line))
	}
	result := make([]int, len(line))
	for idx, field := range line {
		v, err := strconv.ParseUint(field, 10, 31)
		if err != nil {
			return nil, parseError(r.line, field,
				"invalid %s field %q", name, field)
		}
		result[idx] = int(v)
	}
	return result, nil
}

// readLine returns the fields of the next non-empty line.
func (r *lineReader) readLine() ([]string, error) {
	for {
		line, err := r.r.ReadString('\n')
		if err != nil && (err != io.EOF || len(line) == 0) {
			return nil, err
		}
		r.line++
		parts := strings.Fields(line)
		if len(parts) > 0 {
			return parts, nil
		}
		if err == io.EOF {
			return nil, err
		}
	}
}
