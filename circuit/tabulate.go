//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// PrintStats prints the circuit header values and the gate statistics.
// The Gates column counts the parsed gates and the Declared column
// holds the header values.
func (c *Circuit) PrintStats(out io.Writer) {
	stats := c.Stats()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Item").SetAlign(tabulate.ML)
	tab.Header("Declared").SetAlign(tabulate.MR)
	tab.Header("Gates").SetAlign(tabulate.MR)

	for _, op := range []Operation{AND, XOR, INV} {
		row := tab.Row()
		row.Column(op.String())
		row.Column(fmt.Sprintf("%d", c.declared(op)))
		row.Column(fmt.Sprintf("%d", stats[op]))
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", c.NumGates)).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", len(c.Gates))).SetFormat(tabulate.FmtBold)

	for _, item := range []struct {
		name  string
		value int
	}{
		{"Wires", c.NumWires},
		{"├╴Garbler", c.GarblerInputs},
		{"├╴Evaluator", c.EvaluatorInputs},
		{"╰╴Outputs", c.NumOutputs},
	} {
		row := tab.Row()
		row.Column(item.name)
		row.Column(fmt.Sprintf("%d", item.value))
		row.Column("")
	}
	row = tab.Row()
	row.Column("Ciphertexts")
	row.Column("")
	row.Column(fmt.Sprintf("%d", c.Cost()))

	tab.Print(out)
}

func (c *Circuit) declared(op Operation) int {
	switch op {
	case AND:
		return c.NumAND
	case XOR:
		return c.NumXOR
	case INV:
		return c.NumINV
	default:
		return 0
	}
}
