package types

// The memory map of the emulated machine. Only the regions that have a
// device behind them are listed here; everything else is unmapped.
const (
	// ROMStart is the start of the program region. The host loads the
	// initial memory image here.
	ROMStart uint16 = 0x0000
	// ROMEnd is the last address of the program region.
	ROMEnd uint16 = 0x7FFF

	// VRAMStart is the first address of video RAM (8kB).
	VRAMStart uint16 = 0x8000
	// VRAMEnd is the last address of video RAM.
	VRAMEnd uint16 = 0x9FFF
	// VRAMSize is the number of bytes in video RAM.
	VRAMSize = int(VRAMEnd-VRAMStart) + 1

	// TileDataEnd is the last VRAM offset (not address) that holds tile
	// data. Offsets above it belong to the tile maps.
	TileDataEnd uint16 = 0x17FF
	// TileCount is the number of tiles addressable in tile data.
	TileCount = 384

	// WRAMStart is the first address of work RAM (8kB).
	WRAMStart uint16 = 0xC000
	// WRAMEnd is the last address of work RAM.
	WRAMEnd uint16 = 0xDFFF

	// HRAMStart is the first address of high RAM (127B).
	HRAMStart uint16 = 0xFF80
	// HRAMEnd is the last address of high RAM.
	HRAMEnd uint16 = 0xFFFE

	// IOBase is the base address used by the LDH and LD (C) instructions.
	IOBase uint16 = 0xFF00

	// EntryPoint is where execution starts once the boot sequence
	// has handed over control.
	EntryPoint uint16 = 0x0100
	// StackTop is the initial stack pointer after the boot sequence.
	StackTop uint16 = 0xFFFE
)
