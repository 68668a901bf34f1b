package ppu

// TilePixelValue is the 2-bit shade level of a single tile pixel.
type TilePixelValue uint8

const (
	Level0 TilePixelValue = iota
	Level1
	Level2
	Level3
)

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades, indexed as [row][column].
type Tile [8][8]TilePixelValue

// decodeRow derives the 8 pixels of a tile row from its two bitplanes.
// The low plane provides bit 0 of each pixel and the high plane bit 1,
// with the leftmost pixel in the most significant bit.
func decodeRow(lo, hi uint8) [8]TilePixelValue {
	var row [8]TilePixelValue
	for tileX := 0; tileX < 8; tileX++ {
		row[tileX] = TilePixelValue(lo>>(7-tileX)&1 | (hi>>(7-tileX)&1)<<1)
	}
	return row
}

// NewTile decodes a whole tile from its 16 bytes of tile data.
func NewTile(b [16]uint8) Tile {
	var t Tile
	for tileY := 0; tileY < 8; tileY++ {
		t[tileY] = decodeRow(b[tileY*2], b[tileY*2+1])
	}
	return t
}
