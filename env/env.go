//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the garbler.
package env

import (
	"crypto/rand"
	"io"

	"github.com/markkurossi/freexor/label"
	"go.uber.org/zap"
)

// Config defines the global configuration for the garbler. Config
// must not be modified after being passed to any module. It is safe
// for concurrent use by multiple modules as they do not modify it.
type Config struct {
	// Rand is the source of entropy for label generation. It is
	// ignored if Seed is set.
	Rand io.Reader
	// Seed makes label generation deterministic. Anyone knowing the
	// seed knows all labels so it is only for tests and test vectors.
	Seed *label.Seed
	// Logger receives debug logging. Logging is disabled if nil.
	Logger *zap.Logger
}

// GetRandom returns the source of entropy for label generation. If
// the configuration has a seed, each call returns a fresh stream
// starting from the beginning of the seeded sequence. A nil Config
// uses crypto/rand.
func (config *Config) GetRandom() io.Reader {
	if config == nil {
		return rand.Reader
	}
	if config.Seed != nil {
		return label.NewRand(*config.Seed)
	}
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetLogger returns the configured logger or a no-op logger.
func (config *Config) GetLogger() *zap.Logger {
	if config != nil && config.Logger != nil {
		return config.Logger
	}
	return zap.NewNop()
}
