//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error classes. Test them with errors.Is.
var (
	// ErrMalformedCircuit is returned when the circuit description
	// can't be parsed.
	ErrMalformedCircuit = errors.New("malformed circuit description")

	// ErrBrokenTopologicalOrder is returned when a gate reads a wire
	// that no earlier gate or input has assigned.
	ErrBrokenTopologicalOrder = errors.New("broken topological order")

	// ErrExhaustedLabelSupply is returned when the label inputs do not
	// match the label counts the circuit needs.
	ErrExhaustedLabelSupply = errors.New("exhausted label supply")

	// ErrInvalidWire is returned when a gate references a wire outside
	// the circuit or assigns a wire twice.
	ErrInvalidWire = errors.New("invalid wire")

	// ErrCountMismatch is returned when the header counts do not match
	// the circuit gates.
	ErrCountMismatch = errors.New("gate count mismatch")
)

// ParseError describes a circuit description parse error.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(line int, token string, format string,
	args ...interface{}) error {
	return &ParseError{
		Line:  line,
		Token: token,
		Err:   errors.Wrapf(ErrMalformedCircuit, format, args...),
	}
}

// GarbleError describes a gate that could not be garbled.
type GarbleError struct {
	Gate int
	Op   Operation
	Err  error
}

func (e *GarbleError) Error() string {
	return fmt.Sprintf("gate %d (%s): %s", e.Gate, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *GarbleError) Unwrap() error {
	return e.Err
}

func gateError(idx int, op Operation, class error, format string,
	args ...interface{}) error {
	return &GarbleError{
		Gate: idx,
		Op:   op,
		Err:  errors.Wrapf(class, format, args...),
	}
}
