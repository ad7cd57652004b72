//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/freexor/circuit"
	"github.com/markkurossi/freexor/env"
	"github.com/markkurossi/freexor/label"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGarbleCmd(opts *options) *cobra.Command {
	var output string
	var format string
	var workers int
	var validate bool
	var timing bool

	cmd := &cobra.Command{
		Use:   "garble <circuit>",
		Short: "Garble a circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			defer cfg.GetLogger().Sync()

			var out io.Writer = cmd.OutOrStdout()
			var w *bufio.Writer
			if len(output) > 0 {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "creating output file")
				}
				defer f.Close()
				w = bufio.NewWriter(f)
				out = w
			}

			t := circuit.NewTiming()
			garbled, err := garble(cfg, t, args[0], validate, workers)
			if err != nil {
				return err
			}
			if err := garbled.MarshalFormat(out, format); err != nil {
				return errors.Wrap(err, "writing garbled tables")
			}
			if w != nil {
				if err := w.Flush(); err != nil {
					return errors.Wrap(err, "writing garbled tables")
				}
			}
			t.Sample("Marshal", []string{format})

			if timing {
				t.Print(cmd.ErrOrStderr(), circuit.FileSize(garbled.Size()))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file")
	flags.StringVarP(&format, "format", "f", "json",
		"output format: json or binary")
	flags.IntVarP(&workers, "workers", "w", 1,
		"garbling workers, 0 for one per CPU")
	flags.BoolVar(&validate, "validate", false,
		"validate circuit before garbling")
	flags.BoolVar(&timing, "timing", false, "print timing report")

	return cmd
}

func garble(cfg *env.Config, t *circuit.Timing, file string, validate bool,
	workers int) (*circuit.Garbled, error) {

	logger := cfg.GetLogger()

	circ, err := circuit.ParseFile(file)
	if err != nil {
		return nil, err
	}
	parsed := time.Now()
	logger.Debug("loaded circuit", zap.String("file", file),
		zap.Stringer("circuit", circ))

	if validate {
		if err := circ.Validate(); err != nil {
			return nil, err
		}
	}
	sample := t.Sample("Load", []string{fmt.Sprintf("%d gates",
		len(circ.Gates))})
	sample.SubSample("Parse", parsed)
	if validate {
		sample.SubSample("Validate", sample.End)
	}

	labels, err := label.Generate(cfg.GetRandom(), circ.InputWireCount(),
		circ.InnerLabelCount())
	if err != nil {
		return nil, err
	}
	logger.Debug("generated labels",
		zap.Int("input", len(labels.Input)),
		zap.Int("inner", len(labels.Inner)))
	t.Sample("Labels", []string{fmt.Sprintf("%d labels",
		1+len(labels.Input)+len(labels.Inner))})

	var garbled *circuit.Garbled
	if workers == 1 {
		garbled, err = circ.Garble(cfg, labels)
	} else {
		garbled, err = circ.GarbleParallel(cfg, labels, workers)
	}
	if err != nil {
		return nil, err
	}
	t.Sample("Garble", []string{fmt.Sprintf("%d ct", circ.Cost())})

	return garbled, nil
}
