//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/markkurossi/freexor/circuit"
	"github.com/markkurossi/freexor/label"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var dump bool
	var dot bool

	cmd := &cobra.Command{
		Use:   "stats <circuit>",
		Short: "Print circuit statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			circ, err := circuit.ParseFile(args[0])
			if err != nil {
				return err
			}
			if dot {
				circ.Dot(cmd.OutOrStdout())
				return nil
			}
			circ.PrintStats(cmd.OutOrStdout())
			if dump {
				circ.Dump(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump circuit gates")
	cmd.Flags().BoolVar(&dot, "dot", false, "print graphviz dot output")

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <circuit>",
		Short: "Check circuit wires, counts, and topological order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			circ, err := circuit.ParseFile(args[0])
			if err != nil {
				return err
			}
			if err := circ.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], circ)
			return nil
		},
	}
}

func newLabelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "labels <circuit>",
		Short: "Print the labels drawn for a circuit",
		Long: `Labels prints the global offset and the zero-labels the garbler
draws for the circuit. The labels are only reproducible with --seed or
--zero-seed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			defer cfg.GetLogger().Sync()

			circ, err := circuit.ParseFile(args[0])
			if err != nil {
				return err
			}
			labels, err := label.Generate(cfg.GetRandom(),
				circ.InputWireCount(), circ.InnerLabelCount())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "delta\t%s\n", labels.Delta)
			for i, l := range labels.Input {
				fmt.Fprintf(out, "input%d\t%s\n", i, l)
			}
			for i, l := range labels.Inner {
				fmt.Fprintf(out, "inner%d\t%s\n", i, l)
			}
			return nil
		},
	}
}
