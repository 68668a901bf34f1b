// Package mmu provides the memory bus of the emulator. The MMU is unaware
// of the devices behind it; it only knows which address ranges belong to
// which device, and rebases every access to an offset within that device.
package mmu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// ErrRegionOverlap is returned by Map when the requested range overlaps
// a range that is already mapped.
var ErrRegionOverlap = errors.New("region overlaps an existing mapping")

// Device is the interface that the MMU uses to communicate with the
// components mapped onto the bus. Addresses are offsets from the start
// of the device's region.
type Device interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// UnmappedAccessError is raised when the bus is accessed at an address
// that no device has been mapped to.
type UnmappedAccessError struct {
	Address uint16
	Write   bool
}

func (e *UnmappedAccessError) Error() string {
	if e.Write {
		return fmt.Sprintf("write to unmapped address %#04x", e.Address)
	}
	return fmt.Sprintf("read from unmapped address %#04x", e.Address)
}

// Region describes a single mapping on the bus.
type Region struct {
	Name       string
	Start, End uint16
	device     Device
}

// MMU is the memory bus. It spans the full 16-bit address space, and
// dispatches each access to the device mapped at that address.
type MMU struct {
	// 64kB address space, indexing into regions (0 is unmapped)
	raw     [0x10000]uint8
	regions []Region

	Log log.Logger
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// NewMMU returns a new MMU with the video device mapped to
// 0x8000 - 0x9FFF. Nothing else is mapped.
func NewMMU(video Device, opts ...Opt) *MMU {
	m := &MMU{
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	// the bus is empty, so this can't overlap
	if err := m.Map("VRAM", types.VRAMStart, types.VRAMEnd, video); err != nil {
		panic(err)
	}

	return m
}

// Map attaches d to the inclusive address range start - end.
func (m *MMU) Map(name string, start, end uint16, d Device) error {
	if end < start {
		return fmt.Errorf("mapping %s: end %#04x before start %#04x", name, end, start)
	}
	if len(m.regions) == 0xFF {
		return fmt.Errorf("mapping %s: too many regions", name)
	}
	for addr := int(start); addr <= int(end); addr++ {
		if idx := m.raw[addr]; idx != 0 {
			return fmt.Errorf("mapping %s at %#04x: %s: %w", name, addr, m.regions[idx-1].Name, ErrRegionOverlap)
		}
	}

	m.regions = append(m.regions, Region{Name: name, Start: start, End: end, device: d})
	idx := uint8(len(m.regions))
	for addr := int(start); addr <= int(end); addr++ {
		m.raw[addr] = idx
	}

	m.Log.Debugf("mapped %s to %#04x - %#04x", name, start, end)
	return nil
}

// Regions returns the current mappings, in the order they were made.
func (m *MMU) Regions() []Region {
	r := make([]Region, len(m.regions))
	copy(r, m.regions)
	return r
}

// Read returns the value at the given address. Reading an unmapped
// address panics with an *UnmappedAccessError.
func (m *MMU) Read(address uint16) uint8 {
	idx := m.raw[address]
	if idx == 0 {
		panic(&UnmappedAccessError{Address: address})
	}
	r := &m.regions[idx-1]
	return r.device.Read(address - r.Start)
}

// Write writes the value to the given address. Writing an unmapped
// address panics with an *UnmappedAccessError.
func (m *MMU) Write(address uint16, value uint8) {
	idx := m.raw[address]
	if idx == 0 {
		panic(&UnmappedAccessError{Address: address, Write: true})
	}
	r := &m.regions[idx-1]
	r.device.Write(address-r.Start, value)
}

// Mapped reports whether a device is mapped at address.
func (m *MMU) Mapped(address uint16) bool {
	return m.raw[address] != 0
}
