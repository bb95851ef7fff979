package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the GameBoy and every
// component it creates.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
	}
}

// WithBootROM overlays rom on the start of the address space
// until it unmaps itself. A boot ROM of the wrong length causes
// NewGameBoy to fail with a *boot.Error.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		b, err := boot.LoadBootROM(rom)
		if err != nil {
			if gb.optErr == nil {
				gb.optErr = err
			}
			return
		}
		gb.bootROM = b
	}
}

// SkipBoot starts execution at 0x0100, with the registers set
// to the values left behind by the DMG boot ROM.
func SkipBoot() Opt {
	return func(gb *GameBoy) {
		gb.skipBoot = true
	}
}

// WithSerialOutput writes every byte sent over the serial port
// to w. Test ROMs use this to report their results.
func WithSerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serial = serial.NewWriterDevice(w)
	}
}

// postBoot puts the console into the state the DMG boot ROM
// leaves it in.
func (g *GameBoy) postBoot() error {
	c := g.CPU
	c.SetRegister(cpu.RegAF, 0x01B0)
	c.SetRegister(cpu.RegBC, 0x0013)
	c.SetRegister(cpu.RegDE, 0x00D8)
	c.SetRegister(cpu.RegHL, 0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100

	for _, w := range []struct {
		address uint16
		value   uint8
	}{
		{types.NR52, 0xF1}, // power on before the other audio registers
		{types.NR50, 0x77},
		{types.NR51, 0xF3},
		{types.LCDC, 0x91},
		{types.BGP, 0xFC},
		{types.BDIS, 0x01},
	} {
		if err := g.MMU.Write(w.address, w.value); err != nil {
			return err
		}
	}
	return nil
}
