//
// garble.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/freexor/env"
	"github.com/markkurossi/freexor/label"
	"github.com/minio/sha256-simd"
	"go.uber.org/zap"
)

// Ciphertext is one garbled table entry.
type Ciphertext label.Data

func (ct Ciphertext) String() string {
	return hex.EncodeToString(ct[:])
}

// MarshalText implements encoding.TextMarshaler.
func (ct Ciphertext) MarshalText() ([]byte, error) {
	return []byte(ct.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ct *Ciphertext) UnmarshalText(text []byte) error {
	if hex.DecodedLen(len(text)) != len(ct) {
		return errors.Newf("invalid ciphertext length %d", len(text))
	}
	_, err := hex.Decode(ct[:], text)
	return err
}

// Label returns the ciphertext as a label.
func (ct Ciphertext) Label() label.Label {
	var l label.Label
	l.SetBytes(ct[:])
	return l
}

// Pad computes the hash pad H(a || b): the first 128 bits of
// SHA-256 over the concatenated labels. The pad does not depend on
// the gate so equal label pairs give equal pads in any gate.
func Pad(a, b label.Label) label.Label {
	var buf [2 * label.Size]byte
	var data label.Data

	copy(buf[:label.Size], a.Bytes(&data))
	copy(buf[label.Size:], b.Bytes(&data))

	digest := sha256.Sum256(buf[:])

	var pad label.Label
	pad.SetBytes(digest[:label.Size])
	return pad
}

func encrypt(a, b, c label.Label) Ciphertext {
	var ct Ciphertext

	pad := Pad(a, b)
	pad.Xor(c)
	pad.GetData((*label.Data)(&ct))

	return ct
}

// AndTable is the garbled table of an AND gate. Table entries are
// ordered by the input bits (0,0), (0,1), (1,0), (1,1).
type AndTable struct {
	Gate  int           `json:"gate"`
	In0   Wire          `json:"in0"`
	In1   Wire          `json:"in1"`
	Out   Wire          `json:"out"`
	Table [4]Ciphertext `json:"table"`
}

// NotTable is the garbled table of an INV gate. Table entries are
// ordered by the input bit.
type NotTable struct {
	Gate  int           `json:"gate"`
	Input Wire          `json:"input"`
	Out   Wire          `json:"out"`
	Table [2]Ciphertext `json:"table"`
}

// Garbled contains the garbled tables of a circuit. The AND and INV
// tables are in gate order and carry their gate index so the circuit
// can be reassembled.
type Garbled struct {
	AndTables []AndTable `json:"and_tables"`
	NotTables []NotTable `json:"not_tables"`
}

// Equal tests if the garbled outputs are equal.
func (g *Garbled) Equal(o *Garbled) bool {
	if len(g.AndTables) != len(o.AndTables) ||
		len(g.NotTables) != len(o.NotTables) {
		return false
	}
	for i := range g.AndTables {
		if g.AndTables[i] != o.AndTables[i] {
			return false
		}
	}
	for i := range g.NotTables {
		if g.NotTables[i] != o.NotTables[i] {
			return false
		}
	}
	return true
}

// Garble garbles the circuit with the label inputs.
func (c *Circuit) Garble(cfg *env.Config, labels *label.Inputs) (
	*Garbled, error) {

	garbled, _, err := c.GarbleWithWires(cfg, labels)
	return garbled, err
}

// GarbleWithWires garbles the circuit and returns the garbled tables
// and the wire label table. The wire labels are secret and must not be
// disclosed to the evaluator.
func (c *Circuit) GarbleWithWires(cfg *env.Config, labels *label.Inputs) (
	*Garbled, []Slot, error) {

	wires, err := c.initWires(labels)
	if err != nil {
		return nil, nil, err
	}
	delta := labels.Delta
	inner := labels.Inner

	garbled := &Garbled{
		AndTables: make([]AndTable, 0, c.NumAND),
		NotTables: make([]NotTable, 0, c.NumINV),
	}

	for idx, gate := range c.Gates {
		if err := wires.check(idx, gate); err != nil {
			return nil, nil, err
		}

		switch gate.Op {
		case XOR:
			a := wires.get(gate.Input0)
			b := wires.get(gate.Input1)

			l0 := a.L0
			l0.Xor(b.L0)
			wires.set(gate.Output, label.NewWire(l0, delta))

		case AND:
			if len(inner) == 0 {
				return nil, nil, gateError(idx, gate.Op,
					ErrExhaustedLabelSupply, "no inner label left")
			}
			out := label.NewWire(inner[0], delta)
			inner = inner[1:]

			garbled.AndTables = append(garbled.AndTables,
				garbleAND(idx, gate, wires.get(gate.Input0),
					wires.get(gate.Input1), out))
			wires.set(gate.Output, out)

		case INV:
			if len(inner) == 0 {
				return nil, nil, gateError(idx, gate.Op,
					ErrExhaustedLabelSupply, "no inner label left")
			}
			out := label.NewWire(inner[0], delta)
			inner = inner[1:]

			garbled.NotTables = append(garbled.NotTables,
				garbleINV(idx, gate, wires.get(gate.Input0), out))
			wires.set(gate.Output, out)

		default:
			return nil, nil, gateError(idx, gate.Op, ErrMalformedCircuit,
				"invalid operation")
		}
	}
	cfg.GetLogger().Debug("garbled circuit",
		zap.Int("gates", len(c.Gates)),
		zap.Int("and", len(garbled.AndTables)),
		zap.Int("inv", len(garbled.NotTables)))

	return garbled, wires, nil
}

func garbleAND(idx int, gate Gate, a, b, c label.Wire) AndTable {
	// a b c
	// -----
	// 0 0 0
	// 0 1 0
	// 1 0 0
	// 1 1 1
	return AndTable{
		Gate: idx,
		In0:  gate.Input0,
		In1:  gate.Input1,
		Out:  gate.Output,
		Table: [4]Ciphertext{
			encrypt(a.L0, b.L0, c.L0),
			encrypt(a.L0, b.L1, c.L0),
			encrypt(a.L1, b.L0, c.L0),
			encrypt(a.L1, b.L1, c.L1),
		},
	}
}

func garbleINV(idx int, gate Gate, a, c label.Wire) NotTable {
	// a c
	// ---
	// 0 1
	// 1 0
	return NotTable{
		Gate:  idx,
		Input: gate.Input0,
		Out:   gate.Output,
		Table: [2]Ciphertext{
			encrypt(a.L0, a.L0, c.L1),
			encrypt(a.L1, a.L1, c.L0),
		},
	}
}

// Slot holds the labels of one wire. Slots of unassigned wires have
// zero labels.
type Slot struct {
	Wire     label.Wire
	Assigned bool
}

// wireTable holds the wire labels of one garbling pass, indexed by
// wire ID.
type wireTable []Slot

func (c *Circuit) initWires(labels *label.Inputs) (wireTable, error) {
	if labels == nil {
		return nil, errors.Wrap(ErrExhaustedLabelSupply, "no label inputs")
	}
	inputs := c.InputWireCount()
	if inputs > c.NumWires {
		return nil, errors.Wrapf(ErrInvalidWire,
			"%d input wires in a circuit of %d wires", inputs, c.NumWires)
	}
	if len(labels.Input) != inputs {
		return nil, errors.Wrapf(ErrExhaustedLabelSupply,
			"got %d input labels, expected %d", len(labels.Input), inputs)
	}
	// The supply follows the header counts. Gates beyond the declared
	// counts fail when they run out of labels and surplus labels are
	// left unused.
	if needed := c.InnerLabelCount(); len(labels.Inner) != needed {
		return nil, errors.Wrapf(ErrExhaustedLabelSupply,
			"got %d inner labels, expected %d", len(labels.Inner), needed)
	}

	t := make(wireTable, c.NumWires)
	for i, l0 := range labels.Input {
		t[i] = Slot{
			Wire:     label.NewWire(l0, labels.Delta),
			Assigned: true,
		}
	}
	return t, nil
}

// check verifies that the gate wires are inside the table and that
// the gate inputs are assigned.
func (t wireTable) check(idx int, gate Gate) error {
	if gate.Op > INV {
		return nil
	}
	for _, w := range gate.Inputs() {
		if w.ID() >= len(t) {
			return gateError(idx, gate.Op, ErrInvalidWire,
				"input wire %d out of range [0...%d[", w, len(t))
		}
		if !t[w].Assigned {
			return gateError(idx, gate.Op, ErrBrokenTopologicalOrder,
				"input wire %d not assigned", w)
		}
	}
	if gate.Output.ID() >= len(t) {
		return gateError(idx, gate.Op, ErrInvalidWire,
			"output wire %d out of range [0...%d[", gate.Output, len(t))
	}
	return nil
}

func (t wireTable) get(w Wire) label.Wire {
	return t[w].Wire
}

func (t wireTable) set(w Wire, l label.Wire) {
	t[w] = Slot{
		Wire:     l,
		Assigned: true,
	}
}
