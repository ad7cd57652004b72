//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"runtime"

	"github.com/markkurossi/freexor/env"
	"github.com/markkurossi/freexor/label"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// parallelChunk is the number of gates one goroutine garbles.
const parallelChunk = 256

// GarbleParallel garbles the circuit with up to workers goroutines.
// If workers is not positive, GarbleParallel uses one worker per
// CPU. The gates are grouped into topological levels and the gates of
// a level are garbled concurrently. Inner labels are bound to gates in
// gate order so the result is identical to Garble. Unlike Garble,
// GarbleParallel rejects circuits assigning a wire twice.
func (c *Circuit) GarbleParallel(cfg *env.Config, labels *label.Inputs,
	workers int) (*Garbled, error) {

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	wires, err := c.initWires(labels)
	if err != nil {
		return nil, err
	}
	sched, err := c.schedule()
	if err != nil {
		return nil, err
	}

	garbled := &Garbled{
		AndTables: make([]AndTable, sched.NumAND),
		NotTables: make([]NotTable, sched.NumINV),
	}
	delta := labels.Delta

	garbleGate := func(idx int) error {
		gate := c.Gates[idx]
		st := sched.Steps[idx]

		if gate.Op != XOR && st.Inner >= len(labels.Inner) {
			return gateError(idx, gate.Op, ErrExhaustedLabelSupply,
				"inner label %d of %d", st.Inner, len(labels.Inner))
		}

		switch gate.Op {
		case XOR:
			l0 := wires.get(gate.Input0).L0
			l0.Xor(wires.get(gate.Input1).L0)
			wires.set(gate.Output, label.NewWire(l0, delta))

		case AND:
			out := label.NewWire(labels.Inner[st.Inner], delta)
			garbled.AndTables[st.Table] = garbleAND(idx, gate,
				wires.get(gate.Input0), wires.get(gate.Input1), out)
			wires.set(gate.Output, out)

		case INV:
			out := label.NewWire(labels.Inner[st.Inner], delta)
			garbled.NotTables[st.Table] = garbleINV(idx, gate,
				wires.get(gate.Input0), out)
			wires.set(gate.Output, out)
		}
		return nil
	}

	for _, level := range sched.Levels {
		// Gates of one level write distinct wires and table slots, and
		// read only wires of earlier levels.
		var g errgroup.Group
		g.SetLimit(workers)
		for start := 0; start < len(level); start += parallelChunk {
			gates := level[start:min(start+parallelChunk, len(level))]
			g.Go(func() error {
				for _, idx := range gates {
					if err := garbleGate(idx); err != nil {
						return err
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	cfg.GetLogger().Debug("garbled circuit",
		zap.Int("gates", len(c.Gates)),
		zap.Int("levels", len(sched.Levels)),
		zap.Int("workers", workers),
		zap.Int("and", len(garbled.AndTables)),
		zap.Int("inv", len(garbled.NotTables)))

	return garbled, nil
}
