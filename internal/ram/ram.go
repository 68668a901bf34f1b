// Package ram provides a basic RAM implementation.
package ram

import (
	"errors"
	"fmt"
)

// ErrImageTooLarge is returned when an image does not fit into a RAM.
var ErrImageTooLarge = errors.New("image does not fit into RAM")

// RAM represents a block of RAM. Addresses are offsets from the start of
// the block, as handed over by the memory bus.
type RAM struct {
	data []uint8
}

// NewRAM returns a new, zeroed RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given offset.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given offset.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Load copies data into the RAM starting at offset.
func (r *RAM) Load(offset uint16, data []byte) error {
	if int(offset)+len(data) > len(r.data) {
		return fmt.Errorf("%d bytes at offset %#04x into %d bytes: %w", len(data), offset, len(r.data), ErrImageTooLarge)
	}
	copy(r.data[offset:], data)
	return nil
}

// Size returns the size of the RAM in bytes.
func (r *RAM) Size() int {
	return len(r.data)
}
