package lcd

// Mode represents a mode of the LCD, as reported in STAT bits 0-1.
type Mode uint8

const (
	// HBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM mode. The CPU can access OAM but not the display RAM.
	OAM
	// VRAM is the VRAM mode. The CPU can access the display RAM but not OAM.
	VRAM
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAM:
		return "OAM"
	case VRAM:
		return "VRAM"
	}
	return "Unknown"
}

// Timings of a single scanline, in cycles.
const (
	oamCycles      = 80
	transferCycles = 172
	hblankCycles   = 204

	// ScanlineCycles is the number of cycles taken to draw a
	// single scanline.
	ScanlineCycles = oamCycles + transferCycles + hblankCycles

	// VisibleLines is the number of lines drawn before VBlank.
	VisibleLines = 144
	// Lines is the total number of lines, including VBlank.
	Lines = 154
)

// modeAt returns the mode of the LCD after cycles have elapsed
// on line ly.
func modeAt(ly uint8, cycles uint16) Mode {
	switch {
	case ly >= VisibleLines:
		return VBlank
	case cycles < oamCycles:
		return OAM
	case cycles < oamCycles+transferCycles:
		return VRAM
	default:
		return HBlank
	}
}

// interruptBit returns the STAT interrupt enable bit for m.
func (m Mode) interruptBit() uint8 {
	switch m {
	case HBlank:
		return 3
	case VBlank:
		return 4
	case OAM:
		return 5
	}
	return 0xFF
}
