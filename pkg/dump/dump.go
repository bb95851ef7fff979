// Package dump writes debugging artefacts from a running console:
// an image of the tiles held in video RAM, and snapshots of the
// address space.
package dump

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/andybalholm/brotli"
	"golang.org/x/image/bmp"
)

const (
	// TileBytes is the size of an encoded tile.
	TileBytes = 16
	// AtlasTiles is the number of tiles in the tile data area
	// (0x8000 - 0x97FF).
	AtlasTiles = 384
	// AtlasColumns is the width of the atlas, in tiles.
	AtlasColumns = 16
)

// Shades are the four gray shades of the DMG, from lightest to
// darkest.
var Shades = color.Palette{
	color.Gray{Y: 0xFF},
	color.Gray{Y: 0xAA},
	color.Gray{Y: 0x55},
	color.Gray{Y: 0x00},
}

// Atlas renders the tile data held in vram as an image
// AtlasColumns tiles wide, mapping colours through the palette
// register value bgp.
func Atlas(vram []uint8, bgp uint8) (*image.Paletted, error) {
	if len(vram) < AtlasTiles*TileBytes {
		return nil, fmt.Errorf("dump: vram too small: %d bytes, need %d", len(vram), AtlasTiles*TileBytes)
	}

	rows := AtlasTiles / AtlasColumns
	img := image.NewPaletted(image.Rect(0, 0, AtlasColumns*8, rows*8), Shades)
	for i := 0; i < AtlasTiles; i++ {
		tile := NewTile(vram[i*TileBytes : (i+1)*TileBytes])
		tile.Draw(img, (i%AtlasColumns)*8, (i/AtlasColumns)*8, bgp)
	}
	return img, nil
}

// TileAtlas writes the tile atlas of vram to w as a BMP image.
func TileAtlas(w io.Writer, vram []uint8, bgp uint8) error {
	img, err := Atlas(vram, bgp)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

// Memory writes snapshot to w, brotli compressed if compress is
// set.
func Memory(w io.Writer, snapshot []uint8, compress bool) error {
	if !compress {
		_, err := w.Write(snapshot)
		return err
	}

	bw := brotli.NewWriterLevel(w, brotli.BestCompression)
	if _, err := bw.Write(snapshot); err != nil {
		bw.Close()
		return err
	}
	return bw.Close()
}

// ReadMemory reads a snapshot written by Memory.
func ReadMemory(r io.Reader, compressed bool) ([]uint8, error) {
	if compressed {
		r = brotli.NewReader(r)
	}
	return io.ReadAll(r)
}

// Name returns the file name of a dump of the cartridge with the
// given hash, such as "0123456789abcdef-vram.bmp".
func Name(hash uint64, kind, ext string) string {
	return fmt.Sprintf("%016x-%s.%s", hash, kind, ext)
}
