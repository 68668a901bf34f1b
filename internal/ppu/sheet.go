package ppu

import (
	"image"

	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"golang.org/x/image/draw"
)

const (
	// SheetColumns is the number of tiles per row in a TileSheet.
	SheetColumns = 16
	// SheetRows is the number of tile rows in a TileSheet.
	SheetRows = types.TileCount / SheetColumns
)

// TileSheet renders the tile set of a Video into a paletted image, 16
// tiles across and 24 tiles down. Tiles are only redrawn when their
// backing bytes have changed since the previous call to Render.
type TileSheet struct {
	video  *Video
	image  *image.Paletted
	hashes [types.TileCount]uint64
	drawn  [types.TileCount]bool
}

// NewTileSheet returns a TileSheet for the given video device, using p
// to colour the four shade levels.
func NewTileSheet(video *Video, p palette.Palette) *TileSheet {
	return &TileSheet{
		video: video,
		image: image.NewPaletted(image.Rect(0, 0, SheetColumns*8, SheetRows*8), p.ColorPalette()),
	}
}

// Render brings the sheet up to date with video RAM and returns the
// number of tiles that had to be redrawn.
func (s *TileSheet) Render() int {
	redrawn := 0
	for i := 0; i < types.TileCount; i++ {
		hash := s.video.TileHash(i)
		if s.drawn[i] && s.hashes[i] == hash {
			continue
		}
		s.drawTile(i)
		s.hashes[i] = hash
		s.drawn[i] = true
		redrawn++
	}
	return redrawn
}

func (s *TileSheet) drawTile(i int) {
	tile := s.video.Tile(i)
	originX, originY := (i%SheetColumns)*8, (i/SheetColumns)*8
	for tileY := 0; tileY < 8; tileY++ {
		for tileX := 0; tileX < 8; tileX++ {
			s.image.SetColorIndex(originX+tileX, originY+tileY, uint8(tile[tileY][tileX]))
		}
	}
}

// Image returns the rendered sheet. The image is reused between renders.
func (s *TileSheet) Image() *image.Paletted {
	return s.image
}

// Scaled returns a copy of the sheet enlarged by factor using nearest
// neighbour sampling, so that tile pixels stay sharp.
func (s *TileSheet) Scaled(factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	bounds := s.image.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), s.image, bounds, draw.Src, nil)
	return dst
}
