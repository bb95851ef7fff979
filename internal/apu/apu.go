// Package apu implements the audio register file. Registers
// are stored and read back as the hardware presents them, but
// no sound is synthesised.
package apu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/internal/types/registers"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// readMasks holds the bits of NR10 - NR52 that always read as 1,
// indexed from types.NR10. Unused addresses read as 0xFF.
var readMasks = [types.NR52 - types.NR10 + 1]uint8{
	0x80, 0x3F, 0x00, 0xFF, 0xBF, // NR10 - NR14
	0xFF, 0x3F, 0x00, 0xFF, 0xBF, // unused, NR21 - NR24
	0x7F, 0xFF, 0x9F, 0xFF, 0xBF, // NR30 - NR34
	0xFF, 0xFF, 0x00, 0x00, 0xBF, // unused, NR41 - NR44
	0x00, 0x00, 0x70, // NR50 - NR52
}

// APU holds the audio registers.
type APU struct {
	channels [types.NR52 - types.NR10]*registers.Hardware
	wave     [16]*registers.Hardware
	enabled  bool
}

// New returns a new APU, with its registers mapped into regs.
func New(regs *registers.Set) *APU {
	a := &APU{}
	for i := range a.channels {
		address := types.NR10 + types.HardwareAddress(i)
		a.channels[i] = regs.Register(address,
			registers.IsReadableMasked(readMasks[i]),
			registers.WithWriteFunc(func(h *registers.Hardware, v uint8) {
				// registers are read only while powered off
				if a.enabled {
					h.Set(v)
				}
			}),
		)
	}
	regs.Register(types.NR52,
		registers.WithReadFunc(func(*registers.Hardware) uint8 {
			if a.enabled {
				return bits.Bit7 | readMasks[len(readMasks)-1]
			}
			return readMasks[len(readMasks)-1]
		}),
		registers.WithWriteFunc(func(_ *registers.Hardware, v uint8) {
			a.power(v&bits.Bit7 != 0)
		}),
	)
	for i := range a.wave {
		a.wave[i] = regs.Register(types.WaveRAM+types.HardwareAddress(i), registers.IsReadableWritable())
	}
	return a
}

// Enabled returns true if the APU is powered on.
func (a *APU) Enabled() bool {
	return a.enabled
}

// power switches the APU on or off. Powering off clears every
// channel register, leaving wave RAM intact.
func (a *APU) power(on bool) {
	if !on && a.enabled {
		for _, h := range a.channels {
			h.Reset()
		}
	}
	a.enabled = on
}
