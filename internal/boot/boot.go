// Package boot provides the boot ROM that is overlaid on the
// first 256 bytes of the address space at power on.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Size is the size of a DMG-class boot ROM.
const Size = 256

// Error is returned when a boot ROM image is rejected.
type Error struct {
	Length int
}

func (e *Error) Error() string {
	return fmt.Sprintf("boot: invalid boot rom length: %d, want %d", e.Length, Size)
}

// ROM represents a boot ROM. When the console powers on, the
// boot ROM is mapped over 0x0000 - 0x00FF. Once it has completed,
// it unmaps itself by writing to the types.BDIS register, exposing
// the cartridge underneath.
type ROM struct {
	raw      [Size]byte // the raw boot rom
	checksum string     // the MD5 checksum of the boot rom
}

// LoadBootROM loads a boot ROM, ensuring that it is exactly
// Size bytes long, and calculates its MD5 checksum.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, &Error{Length: len(b)}
	}

	r := &ROM{}
	copy(r.raw[:], b)
	sum := md5.Sum(b)
	r.checksum = hex.EncodeToString(sum[:])

	return r, nil
}

// Read returns the byte at the given address.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[addr&0xFF]
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownBootROMChecksums maps the checksums of known boot ROMs
// to the model they shipped with.
var knownBootROMChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
}

const (
	// DMG0 is the early boot ROM found in Japanese launch units.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the most common boot ROM, found in DMG-01 models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF
	// into A rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB hands the cartridge header to the SNES rather
	// than scrolling the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB by the same byte as MGB does
	// from DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)
