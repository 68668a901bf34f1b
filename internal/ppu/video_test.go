package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestVideo_TileRow(t *testing.T) {
	v := NewVideo()
	v.Write(0x0000, 0xFF)
	v.Write(0x0001, 0x00)

	// low bit 1, high bit 0 is level 1 (see "Tile pixel value" in DESIGN.md)

	for x := 0; x < 8; x++ {
		assert.Equalf(t, Level1, v.Tile(0)[0][x], "pixel %d", x)
	}

	v.Write(0x0001, 0xFF)
	for x := 0; x < 8; x++ {
		assert.Equalf(t, Level3, v.Tile(0)[0][x], "pixel %d", x)
	}
}

func TestVideo_BitplanePairing(t *testing.T) {
	v := NewVideo()
	// low plane 0b1010_0000, high plane 0b1100_0000
	v.Write(0x0012, 0xA0)
	v.Write(0x0013, 0xC0)

	row := v.Tile(1)[1]
	assert.Equal(t, [8]TilePixelValue{Level3, Level2, Level1, Level0, Level0, Level0, Level0, Level0}, row)

	// other rows of the tile remain untouched
	for y := 0; y < 8; y++ {
		if y == 1 {
			continue
		}
		assert.Equal(t, [8]TilePixelValue{}, v.Tile(1)[y])
	}
}

func TestVideo_WriteOrder(t *testing.T) {
	v := NewVideo()
	// writing the high plane first must still produce the same row
	v.Write(0x0021, 0x0F)
	v.Write(0x0020, 0x33)

	assert.Equal(t, NewTile(v.TileData(2)), v.Tile(2))
	assert.Equal(t, [8]TilePixelValue{Level0, Level0, Level1, Level1, Level2, Level2, Level3, Level3}, v.Tile(2)[0])
}

func TestVideo_TileDataBoundary(t *testing.T) {
	v := NewVideo()

	// last byte of tile data updates the last tile
	v.Write(types.TileDataEnd, 0x80)
	assert.Equal(t, Level2, v.Tile(types.TileCount - 1)[7][0])

	// tile maps are stored but never decoded
	before := tiles(v)
	v.Write(types.TileDataEnd+1, 0xFF)
	v.Write(0x1FFF, 0xFF)
	assert.Equal(t, before, tiles(v))
	assert.Equal(t, uint8(0xFF), v.Read(0x1FFF))
}

func TestVideo_ReadRaw(t *testing.T) {
	v := NewVideo()
	for i := 0; i < types.VRAMSize; i++ {
		v.Write(uint16(i), uint8(i*7))
	}
	for i := 0; i < types.VRAMSize; i++ {
		require.Equal(t, uint8(i*7), v.Read(uint16(i)))
	}
}

func TestVideo_DerivedMatchesRaw(t *testing.T) {
	v := NewVideo()
	for i := 0; i <= int(types.TileDataEnd); i++ {
		v.Write(uint16(i), uint8(i*31+i>>3))
	}
	for i := 0; i < types.TileCount; i++ {
		require.Equalf(t, NewTile(v.TileData(i)), v.Tile(i), "tile %d", i)
	}
}

func TestVideo_TileHash(t *testing.T) {
	v := NewVideo()
	h := v.TileHash(5)
	assert.Equal(t, h, v.TileHash(6), "identical tiles hash identically")

	v.Write(5*16+3, 0x01)
	assert.NotEqual(t, h, v.TileHash(5))
	assert.Equal(t, h, v.TileHash(6))
}

func TestVideo_TileIsCopy(t *testing.T) {
	v := NewVideo()
	v.Write(0x0000, 0xFF)

	tile := v.Tile(0)
	tile[0][0] = Level0
	assert.Equal(t, Level1, v.Tile(0)[0][0], "the tile set only changes through Write")
}

// tiles returns every decoded tile of v.
func tiles(v *Video) []Tile {
	all := make([]Tile, types.TileCount)
	for i := range all {
		all[i] = v.Tile(i)
	}
	return all
}
