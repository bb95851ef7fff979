package cartridge

import (
	"fmt"
	"strings"
)

// Flag describes which hardware the cartridge targets.
type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

// Type is the controller type byte found at 0x0147.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	POCKETCAMERA      Type = 0x1F
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", uint8(t))
}

var ramSizes = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header represents the header of a cartridge, located at the
// address space 0x0100-0x014F.
type Header struct {
	// 0x0134-0x0142 - Title of the game
	Title string
	// 0x0143 - CGB support flag
	CartridgeGBMode Flag
	// 0x0147 - controller type
	CartridgeType Type
	// 0x0148 - ROM size, in bytes (32kB << n)
	ROMSize uint
	// 0x0149 - external RAM size, in bytes
	RAMSize        uint
	HeaderChecksum uint8
	GlobalChecksum uint16

	// checksum is the header checksum computed over 0x0134-0x014C
	checksum uint8
}

// headerEnd is the first address after the cartridge header.
const headerEnd = 0x0150

// parseHeader parses the header of the given ROM, which must be
// at least headerEnd bytes long.
func parseHeader(rom []byte) Header {
	h := Header{}

	switch rom[0x143] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	h.Title = strings.TrimRight(string(rom[0x134:0x143]), "\x00 ")
	h.CartridgeType = Type(rom[0x147])
	h.ROMSize = (32 * 1024) << (rom[0x148] & 0x0F)
	h.RAMSize = ramSizes[rom[0x149]]
	h.HeaderChecksum = rom[0x14D]
	h.GlobalChecksum = uint16(rom[0x14E])<<8 | uint16(rom[0x14F])

	for _, b := range rom[0x134:0x14D] {
		h.checksum = h.checksum - b - 1
	}

	return h
}

// Valid returns true if the header checksum stored in the
// cartridge matches the one computed from its header.
func (h *Header) Valid() bool {
	return h.checksum == h.HeaderChecksum
}

// Hardware returns the name of the hardware the cartridge targets.
func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
