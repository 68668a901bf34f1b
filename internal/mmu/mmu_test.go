package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestMMU_VideoDispatch(t *testing.T) {
	video := ppu.NewVideo()
	m := NewMMU(video)

	m.Write(0x8000, 0xFF)
	m.Write(0x8001, 0xFF)
	assert.Equal(t, uint8(0xFF), video.Read(0x0000), "address is rebased to offset 0")
	assert.Equal(t, ppu.Level3, video.Tile(0)[0][0])

	video.Write(0x1FFF, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(types.VRAMEnd))
}

func TestMMU_Unmapped(t *testing.T) {
	m := NewMMU(ppu.NewVideo())

	for _, addr := range []uint16{0x0000, 0x7FFF, 0xA000, 0xC000, 0xFFFF} {
		assert.False(t, m.Mapped(addr))
		assert.PanicsWithError(t, (&UnmappedAccessError{Address: addr}).Error(), func() {
			m.Read(addr)
		})
		assert.PanicsWithError(t, (&UnmappedAccessError{Address: addr, Write: true}).Error(), func() {
			m.Write(addr, 0x01)
		})
	}
}

func TestMMU_Map(t *testing.T) {
	m := NewMMU(ppu.NewVideo())
	wram := ram.NewRAM(0x2000)

	require.NoError(t, m.Map("WRAM", types.WRAMStart, types.WRAMEnd, wram))
	m.Write(0xC010, 0x99)
	assert.Equal(t, uint8(0x99), wram.Read(0x0010))
	assert.Equal(t, uint8(0x99), m.Read(0xC010))

	t.Run("overlap", func(t *testing.T) {
		err := m.Map("overlap", 0x9FFF, 0xA0FF, ram.NewRAM(0x101))
		assert.ErrorIs(t, err, ErrRegionOverlap)
		assert.False(t, m.Mapped(0xA000), "failed mapping leaves the bus untouched")
	})
	t.Run("inverted", func(t *testing.T) {
		assert.Error(t, m.Map("inverted", 0xFF00, 0xFE00, ram.NewRAM(1)))
	})
	t.Run("regions", func(t *testing.T) {
		regions := m.Regions()
		require.Len(t, regions, 2)
		assert.Equal(t, "VRAM", regions[0].Name)
		assert.Equal(t, "WRAM", regions[1].Name)
		assert.Equal(t, types.WRAMStart, regions[1].Start)
	})
}
