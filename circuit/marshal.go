//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

const (
	// MAGIC is a magic number for the garbled table format version 0.
	MAGIC = 0x67626c30 // gbl0
)

var (
	bo = binary.BigEndian
)

// MarshalBristol marshals the circuit in the circuit description
// format Parse reads.
func (c *Circuit) MarshalBristol(out io.Writer) error {
	_, err := fmt.Fprintf(out, "%d %d %d %d\n%d %d %d %d\n",
		c.NumGates, c.NumAND, c.NumXOR, c.NumINV,
		c.NumWires, c.GarblerInputs, c.EvaluatorInputs, c.NumOutputs)
	if err != nil {
		return err
	}
	for idx, g := range c.Gates {
		switch g.Op {
		case XOR, AND:
			_, err = fmt.Fprintf(out, "%s %d %d %d\n",
				g.Op, g.Input0, g.Input1, g.Output)
		case INV:
			_, err = fmt.Fprintf(out, "%s %d %d\n", g.Op, g.Input0, g.Output)
		default:
			return errors.Newf("gate %d: unsupported gate type %s", idx, g.Op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// MarshalFormat marshals the garbled tables in the specified format.
func (g *Garbled) MarshalFormat(out io.Writer, format string) error {
	switch format {
	case "json":
		return g.WriteJSON(out)
	case "binary":
		return g.Marshal(out)
	default:
		return errors.Newf("unsupported output format: %s", format)
	}
}

// WriteJSON marshals the garbled tables in indented JSON.
// Ciphertexts are hex encoded.
func (g *Garbled) WriteJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// Marshal marshals the garbled tables in the binary format: the magic
// number and the table counts followed by AND tables and INV tables.
// All integers are big-endian uint32 values.
func (g *Garbled) Marshal(out io.Writer) error {
	var data = []interface{}{
		uint32(MAGIC),
		uint32(len(g.AndTables)),
		uint32(len(g.NotTables)),
	}
	for _, t := range g.AndTables {
		data = append(data, uint32(t.Gate), uint32(t.In0), uint32(t.In1),
			uint32(t.Out), t.Table)
	}
	for _, t := range g.NotTables {
		data = append(data, uint32(t.Gate), uint32(t.Input), uint32(t.Out),
			t.Table)
	}
	for _, v := range data {
		if err := binary.Write(out, bo, v); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the size of the binary marshalled garbled tables.
func (g *Garbled) Size() int {
	return 3*4 + len(g.AndTables)*(4*4+4*16) + len(g.NotTables)*(3*4+2*16)
}

// UnmarshalGarbled reads binary marshalled garbled tables.
func UnmarshalGarbled(in io.Reader) (*Garbled, error) {
	var hdr [3]uint32
	if err := binary.Read(in, bo, &hdr); err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if hdr[0] != MAGIC {
		return nil, errors.Newf("invalid magic 0x%08x", hdr[0])
	}

	g := new(Garbled)
	for i := 0; i < int(hdr[1]); i++ {
		var rec struct {
			Gate, In0, In1, Out uint32
			Table               [4]Ciphertext
		}
		if err := binary.Read(in, bo, &rec); err != nil {
			return nil, errors.Wrapf(err, "reading AND table %d", i)
		}
		g.AndTables = append(g.AndTables, AndTable{
			Gate:  int(rec.Gate),
			In0:   Wire(rec.In0),
			In1:   Wire(rec.In1),
			Out:   Wire(rec.Out),
			Table: rec.Table,
		})
	}
	for i := 0; i < int(hdr[2]); i++ {
		var rec struct {
			Gate, Input, Out uint32
			Table            [2]Ciphertext
		}
		if err := binary.Read(in, bo, &rec); err != nil {
			return nil, errors.Wrapf(err, "reading INV table %d", i)
		}
		g.NotTables = append(g.NotTables, NotTable{
			Gate:  int(rec.Gate),
			Input: Wire(rec.Input),
			Out:   Wire(rec.Out),
			Table: rec.Table,
		})
	}
	return g, nil
}
