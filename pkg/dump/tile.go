package dump

import "image"

// Tile represents a tile. Each tile has a size of 8x8 pixels and
// a colour depth of 4 gray shades, stored as colour numbers.
type Tile [8][8]uint8

// NewTile decodes a tile from its 16 byte, 2 bits per pixel
// representation. Each row is stored as a low byte followed by
// a high byte, with the leftmost pixel in bit 7.
func NewTile(b []uint8) Tile {
	t := Tile{}
	for tileY := 0; tileY < 8; tileY++ {
		lo, hi := b[tileY*2], b[tileY*2+1]
		for tileX := 0; tileX < 8; tileX++ {
			t[tileY][tileX] = (lo>>(7-tileX))&1 | ((hi>>(7-tileX))&1)<<1
		}
	}

	return t
}

// Draw draws the tile to img at the given position, mapping each
// colour number through palette.
func (t Tile) Draw(img *image.Paletted, x, y int, palette uint8) {
	for tileY := 0; tileY < 8; tileY++ {
		for tileX := 0; tileX < 8; tileX++ {
			shade := palette >> (t[tileY][tileX] * 2) & 0b11
			img.SetColorIndex(x+tileX, y+tileY, shade)
		}
	}
}
