//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"github.com/cockroachdb/errors"
)

// step holds the scheduling information of one gate.
type step struct {
	// Level is the gate's topological depth; gates with only primary
	// inputs are on level 1.
	Level int
	// Inner is the index of the gate's inner label.
	Inner int
	// Table is the index of the gate's table in the AND or INV table
	// list.
	Table int
}

// schedule holds the topological levels of the circuit gates.
type schedule struct {
	Steps  []step
	Levels [][]int
	NumAND int
	NumINV int
}

// schedule walks the gates in order and assigns them to topological
// levels. It fails if a gate reads an unassigned wire, references a
// wire outside the circuit, or assigns a wire twice.
func (c *Circuit) schedule() (*schedule, error) {
	inputs := c.InputWireCount()
	if inputs > c.NumWires {
		return nil, errors.Wrapf(ErrInvalidWire,
			"%d input wires in a circuit of %d wires", inputs, c.NumWires)
	}

	// Wire levels; 0 for primary inputs and -1 for unassigned wires.
	levels := make([]int, c.NumWires)
	for i := inputs; i < c.NumWires; i++ {
		levels[i] = -1
	}

	s := &schedule{
		Steps: make([]step, len(c.Gates)),
	}
	var inner int

	for idx, gate := range c.Gates {
		if gate.Op > INV {
			return nil, gateError(idx, gate.Op, ErrMalformedCircuit,
				"invalid operation")
		}
		var level int
		for _, w := range gate.Inputs() {
			if w.ID() >= c.NumWires {
				return nil, gateError(idx, gate.Op, ErrInvalidWire,
					"input wire %d out of range [0...%d[", w, c.NumWires)
			}
			if levels[w] < 0 {
				return nil, gateError(idx, gate.Op, ErrBrokenTopologicalOrder,
					"input wire %d not assigned", w)
			}
			level = max(level, levels[w])
		}
		if gate.Output.ID() >= c.NumWires {
			return nil, gateError(idx, gate.Op, ErrInvalidWire,
				"output wire %d out of range [0...%d[", gate.Output,
				c.NumWires)
		}
		if levels[gate.Output] >= 0 {
			return nil, gateError(idx, gate.Op, ErrInvalidWire,
				"output wire %d already assigned", gate.Output)
		}
		level++
		levels[gate.Output] = level

		st := step{
			Level: level,
		}
		switch gate.Op {
		case AND:
			st.Inner = inner
			st.Table = s.NumAND
			inner++
			s.NumAND++
		case INV:
			st.Inner = inner
			st.Table = s.NumINV
			inner++
			s.NumINV++
		}
		s.Steps[idx] = st

		for len(s.Levels) < level {
			s.Levels = append(s.Levels, nil)
		}
		s.Levels[level-1] = append(s.Levels[level-1], idx)
	}

	return s, nil
}

// Validate checks the circuit before garbling. It verifies that all
// wires are inside the circuit, that the gates are in topological
// order, that no wire is assigned twice, and that the header counts
// match the gates. Garbling does not require Validate but a circuit
// passing it garbles without errors given matching label inputs.
func (c *Circuit) Validate() error {
	if len(c.Gates) != c.NumGates {
		return errors.Wrapf(ErrCountMismatch,
			"header declares %d gates, circuit has %d",
			c.NumGates, len(c.Gates))
	}
	stats := c.Stats()
	for _, check := range []struct {
		op       Operation
		declared int
	}{
		{AND, c.NumAND},
		{XOR, c.NumXOR},
		{INV, c.NumINV},
	} {
		if stats[check.op] != check.declared {
			return errors.Wrapf(ErrCountMismatch,
				"header declares %d %s gates, circuit has %d",
				check.declared, check.op, stats[check.op])
		}
	}
	if c.NumOutputs > c.NumWires {
		return errors.Wrapf(ErrInvalidWire,
			"%d output wires in a circuit of %d wires",
			c.NumOutputs, c.NumWires)
	}
	_, err := c.schedule()
	return err
}
