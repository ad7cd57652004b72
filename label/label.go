//
// label.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

// Package label implements 128 bit wire labels and the seeded label
// generator for Free-XOR garbling.
package label

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Size specifies the label size in bytes.
const Size = 16

// Label implements a 128 bit wire label.
type Label struct {
	D0 uint64
	D1 uint64
}

// Data contains label data as byte array.
type Data [Size]byte

func (l Label) String() string {
	return fmt.Sprintf("%016x%016x", l.D0, l.D1)
}

// Equal tests if the labels are equal.
func (l Label) Equal(o Label) bool {
	return l.D0 == o.D0 && l.D1 == o.D1
}

// New creates a new random label.
func New(rand io.Reader) (Label, error) {
	var buf Data
	var label Label

	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return label, err
	}
	label.SetData(&buf)
	return label, nil
}

// Parse parses the label from its hex representation.
func Parse(val string) (Label, error) {
	var label Label

	data, err := hex.DecodeString(val)
	if err != nil {
		return label, errors.Wrapf(err, "invalid label %q", val)
	}
	if len(data) != Size {
		return label, errors.Newf("invalid label length %d, expected %d",
			len(data), Size)
	}
	label.SetBytes(data)
	return label, nil
}

// Xor xors the label with the argument label.
func (l *Label) Xor(o Label) {
	l.D0 ^= o.D0
	l.D1 ^= o.D1
}

// GetData gets the label as label data.
func (l Label) GetData(buf *Data) {
	binary.BigEndian.PutUint64(buf[0:8], l.D0)
	binary.BigEndian.PutUint64(buf[8:16], l.D1)
}

// SetData sets the label from label data.
func (l *Label) SetData(data *Data) {
	l.D0 = binary.BigEndian.Uint64((*data)[0:8])
	l.D1 = binary.BigEndian.Uint64((*data)[8:16])
}

// Bytes returns the label data as bytes.
func (l Label) Bytes(buf *Data) []byte {
	l.GetData(buf)
	return buf[:]
}

// SetBytes sets the label data from bytes.
func (l *Label) SetBytes(data []byte) {
	l.D0 = binary.BigEndian.Uint64(data[0:8])
	l.D1 = binary.BigEndian.Uint64(data[8:16])
}

// Wire implements a wire with 0 and 1 labels. For every wire of a
// garbling pass, L1 = L0 ^ delta.
type Wire struct {
	L0 Label
	L1 Label
}

// NewWire creates a wire from its zero-label and the global offset.
func NewWire(l0, delta Label) Wire {
	l1 := l0
	l1.Xor(delta)
	return Wire{
		L0: l0,
		L1: l1,
	}
}

// Label returns the wire label for the bit value.
func (w Wire) Label(bit bool) Label {
	if bit {
		return w.L1
	}
	return w.L0
}

func (w Wire) String() string {
	return fmt.Sprintf("%s/%s", w.L0, w.L1)
}

// Bit resolves the label back into its bit value on the wire.
func (w Wire) Bit(l Label) (bool, error) {
	switch {
	case l.Equal(w.L0):
		return false, nil
	case l.Equal(w.L1):
		return true, nil
	default:
		return false, errors.Newf("unknown label %s for wire %v", l, w)
	}
}
