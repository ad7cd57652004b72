//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Dot creates graphviz dot output of the circuit. Garbler and
// evaluator inputs are drawn on the same rank, and so are the output
// wires which by convention are the last wires of the circuit.
func (c *Circuit) Dot(out io.Writer) {
	fmt.Fprintf(out, "digraph circuit\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")
	fmt.Fprintf(out, "  {\n    node [shape=plaintext];\n")
	for w := 0; w < c.NumWires; w++ {
		fmt.Fprintf(out, "    w%d\t[label=\"%d\"];\n", w, w)
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	for idx, gate := range c.Gates {
		fmt.Fprintf(out, "    g%d\t[label=\"%s\"];\n", idx, gate.Op)
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {  rank=same")
	for w := 0; w < c.InputWireCount() && w < c.NumWires; w++ {
		fmt.Fprintf(out, "; w%d", w)
	}
	fmt.Fprintf(out, ";}\n")

	fmt.Fprintf(out, "  {  rank=same")
	for w := 0; w < c.NumOutputs && w < c.NumWires; w++ {
		fmt.Fprintf(out, "; w%d", c.NumWires-w-1)
	}
	fmt.Fprintf(out, ";}\n")

	for idx, gate := range c.Gates {
		// Gates with unknown operations are drawn without inputs.
		if gate.Op <= INV {
			for _, i := range gate.Inputs() {
				fmt.Fprintf(out, "  w%d -> g%d;\n", i, idx)
			}
		}
		fmt.Fprintf(out, "  g%d -> w%d;\n", idx, gate.Output)
	}
	fmt.Fprintf(out, "}\n")
}
