//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements Bristol circuit loading and Free-XOR
// garbling.
package circuit

import (
	"fmt"
	"io"
)

// Operation specifies gate function.
type Operation byte

// Gate functions.
const (
	XOR Operation = iota
	AND
	INV
)

// Stats holds statistics about circuit operations.
type Stats [INV + 1]int

func (op Operation) String() string {
	switch op {
	case XOR:
		return "XOR"
	case AND:
		return "AND"
	case INV:
		return "INV"
	default:
		return fmt.Sprintf("{Operation %d}", op)
	}
}

// Circuit specifies a boolean circuit.
type Circuit struct {
	NumGates        int
	NumAND          int
	NumXOR          int
	NumINV          int
	NumWires        int
	GarblerInputs   int
	EvaluatorInputs int
	NumOutputs      int
	Gates           []Gate
}

func (c *Circuit) String() string {
	return fmt.Sprintf("#gates=%d (XOR=%d AND=%d INV=%d) #w=%d in=%d+%d out=%d",
		c.NumGates, c.NumXOR, c.NumAND, c.NumINV, c.NumWires,
		c.GarblerInputs, c.EvaluatorInputs, c.NumOutputs)
}

// InputWireCount returns the number of primary input wires.
func (c *Circuit) InputWireCount() int {
	return c.GarblerInputs + c.EvaluatorInputs
}

// InnerLabelCount returns the number of inner labels the garbler
// consumes: one for each AND and INV gate output.
func (c *Circuit) InnerLabelCount() int {
	return c.NumAND + c.NumINV
}

// Stats computes the operation statistics of the circuit gates.
func (c *Circuit) Stats() Stats {
	var stats Stats
	for _, g := range c.Gates {
		if g.Op <= INV {
			stats[g.Op]++
		}
	}
	return stats
}

// Cost returns the number of ciphertexts garbling produces.
func (c *Circuit) Cost() int {
	stats := c.Stats()
	return stats[AND]*4 + stats[INV]*2
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump(out io.Writer) {
	fmt.Fprintf(out, "circuit %s\n", c)
	for id, gate := range c.Gates {
		fmt.Fprintf(out, "%04d\t%s\n", id, gate)
	}
}

// Gate specifies a boolean gate. Input1 is unused for INV gates.
type Gate struct {
	Input0 Wire
	Input1 Wire
	Output Wire
	Op     Operation
}

func (g Gate) String() string {
	return fmt.Sprintf("%v %v %v", g.Inputs(), g.Op, g.Output)
}

// Inputs returns gate input wires.
func (g Gate) Inputs() []Wire {
	switch g.Op {
	case XOR, AND:
		return []Wire{g.Input0, g.Input1}
	case INV:
		return []Wire{g.Input0}
	default:
		panic(fmt.Sprintf("unsupported gate type %s", g.Op))
	}
}

// Wire specifies a wire ID.
type Wire uint32

// ID returns the wire ID as integer.
func (w Wire) ID() int {
	return int(w)
}

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}
