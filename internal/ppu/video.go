// Package ppu implements the video device of the emulator. The device
// owns video RAM and keeps a decoded copy of the tile data in sync with
// every write made to it.
package ppu

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const bytesPerTile = 16

// Video is the memory mapped video device. Offsets passed to Read and
// Write are relative to the start of video RAM.
type Video struct {
	vram [types.VRAMSize]uint8

	// tileSet is derived from the tile data region of vram and is only
	// ever updated by Write.
	tileSet [types.TileCount]Tile
}

// NewVideo returns a new Video with zeroed video RAM.
func NewVideo() *Video {
	return &Video{}
}

// Read returns the raw byte stored at offset.
func (v *Video) Read(offset uint16) uint8 {
	return v.vram[offset]
}

// Write stores value at offset and, when offset lies within tile data,
// recomputes the affected tile row.
func (v *Video) Write(offset uint16, value uint8) {
	v.vram[offset] = value

	if offset > types.TileDataEnd {
		return
	}

	// rows are encoded as 2 bytes, the first always at an even offset
	base := offset &^ 1
	tileIndex := offset / bytesPerTile
	rowIndex := (offset % bytesPerTile) / 2

	v.tileSet[tileIndex][rowIndex] = decodeRow(v.vram[base], v.vram[base+1])
}

// Tile returns a copy of the decoded tile at index i.
func (v *Video) Tile(i int) Tile {
	return v.tileSet[i]
}

// TileData returns the 16 raw bytes backing tile i.
func (v *Video) TileData(i int) [bytesPerTile]uint8 {
	var b [bytesPerTile]uint8
	copy(b[:], v.vram[i*bytesPerTile:(i+1)*bytesPerTile])
	return b
}

// TileHash returns a hash of the raw bytes backing tile i. Renderers use
// it to skip tiles that have not changed since they were last drawn.
func (v *Video) TileHash(i int) uint64 {
	return xxhash.Sum64(v.vram[i*bytesPerTile : (i+1)*bytesPerTile])
}
