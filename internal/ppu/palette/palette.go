// Package palette maps the four tile shade levels to displayable colours.
package palette

import "image/color"

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
	// Red is a red palette.
	Red
	// Yellow is a yellow palette.
	Yellow
)

// Palette represents a palette. A palette is an array of 4 RGB values,
// one per shade level, from lightest (level 0) to darkest (level 3).
type Palette struct {
	Colors [4][3]uint8
}

// Palettes is a list of all available palettes.
var Palettes = []Palette{
	// Greyscale
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	// Green
	{
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	// Red
	{
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	// Yellow
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

// Get returns the palette with the given index, falling back to
// Greyscale for unknown indices.
func Get(index int) Palette {
	if index < 0 || index >= len(Palettes) {
		return Palettes[Greyscale]
	}
	return Palettes[index]
}

// Colour returns the colour of the given shade level.
func (p Palette) Colour(level uint8) color.RGBA {
	rgb := p.Colors[level&0x3]
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
}

// ColorPalette returns the palette as an image/color palette, so that
// shade levels can be used directly as paletted image indices.
func (p Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p.Colors))
	for i := range p.Colors {
		cp[i] = p.Colour(uint8(i))
	}
	return cp
}
