//
// main.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/freexor/env"
	"github.com/markkurossi/freexor/label"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	verbose  bool
	seed     string
	zeroSeed bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "garbled: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{
		Use:   "garbled",
		Short: "Free-XOR circuit garbler",
		Long: `Garbled loads boolean circuits in the Bristol text format and
garbles them with Free-XOR. AND and INV gates produce garbled tables;
XOR gates are free.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.seed, "seed", "",
		"hex encoded 32 byte label generator seed (insecure, for testing)")
	flags.BoolVar(&opts.zeroSeed, "zero-seed", false,
		"use the all-zero label generator seed (insecure, for testing)")

	root.AddCommand(newGarbleCmd(opts))
	root.AddCommand(newStatsCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newLabelsCmd(opts))

	return root
}

// config creates the garbler configuration from the command line
// options.
func (opts *options) config() (*env.Config, error) {
	cfg := new(env.Config)

	var logger *zap.Logger
	var err error
	if opts.verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, errors.Wrap(err, "creating logger")
	}
	cfg.Logger = logger

	switch {
	case opts.zeroSeed && len(opts.seed) > 0:
		return nil, errors.New("--seed and --zero-seed are exclusive")

	case opts.zeroSeed:
		seed := label.ZeroSeed
		cfg.Seed = &seed

	case len(opts.seed) > 0:
		seed, err := label.ParseSeed(opts.seed)
		if err != nil {
			return nil, err
		}
		cfg.Seed = &seed
	}
	if cfg.Seed != nil {
		logger.Warn("using a fixed label seed; garbled output is insecure")
	}

	return cfg, nil
}
