// Package lcd implements the LCD control and status registers,
// and the scanline counter that drives the VBlank and STAT
// interrupts. Pixel rendering is not performed.
package lcd

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/internal/types/registers"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// STAT bits.
const (
	coincidenceFlag      = 2
	coincidenceInterrupt = 6
)

// Controller is the LCD controller. It owns the registers in
// the range 0xFF40 - 0xFF4B, excluding DMA.
type Controller struct {
	lcdc *registers.Hardware
	stat *registers.Hardware
	ly   *registers.Hardware
	lyc  *registers.Hardware

	// palette, scroll and window registers are stored but
	// not interpreted
	scy, scx, bgp, obp0, obp1, wy, wx *registers.Hardware

	cycles uint16
	irq    *interrupts.Service
}

// NewController returns a new LCD controller, with its
// registers mapped into regs.
func NewController(regs *registers.Set, irq *interrupts.Service) *Controller {
	c := &Controller{irq: irq}

	c.lcdc = regs.Register(types.LCDC, registers.IsReadable(), registers.WithWriteFunc(func(h *registers.Hardware, v uint8) {
		wasEnabled := c.Enabled()
		h.Set(v)
		if wasEnabled && !c.Enabled() {
			// turning the LCD off resets the scanline
			c.ly.Reset()
			c.cycles = 0
			c.setMode(HBlank)
		}
	}))
	c.stat = regs.Register(types.STAT, registers.PreserveOnWrite(0b111), registers.IsReadableMasked(bits.Bit7))
	c.ly = regs.Register(types.LY, registers.IsReadable())
	c.lyc = regs.Register(types.LYC, registers.IsReadable(), registers.WithWriteFunc(func(h *registers.Hardware, v uint8) {
		h.Set(v)
		c.compare()
	}))

	c.scy = regs.Register(types.SCY, registers.IsReadableWritable())
	c.scx = regs.Register(types.SCX, registers.IsReadableWritable())
	c.bgp = regs.Register(types.BGP, registers.IsReadableWritable())
	c.obp0 = regs.Register(types.OBP0, registers.IsReadableWritable())
	c.obp1 = regs.Register(types.OBP1, registers.IsReadableWritable())
	c.wy = regs.Register(types.WY, registers.IsReadableWritable())
	c.wx = regs.Register(types.WX, registers.IsReadableWritable())

	return c
}

// Enabled returns true if LCDC bit 7 is set.
func (c *Controller) Enabled() bool {
	return c.lcdc.Value()&bits.Bit7 != 0
}

// Mode returns the current mode, as reported by STAT.
func (c *Controller) Mode() Mode {
	return Mode(c.stat.Value() & 0b11)
}

// LY returns the current scanline.
func (c *Controller) LY() uint8 {
	return c.ly.Value()
}

// IncrementLY advances to the next scanline, wrapping after
// line 153. Entering line 144 requests a VBlank interrupt.
func (c *Controller) IncrementLY() {
	ly := c.ly.Increment()
	if ly >= Lines {
		ly = 0
		c.ly.Reset()
	}
	if ly == VisibleLines {
		c.irq.Request(interrupts.VBlank)
	}
	c.compare()
}

// Tick advances the scanline counter by the given number of
// cycles. Nothing happens while the LCD is disabled.
func (c *Controller) Tick(cycles uint16) {
	if !c.Enabled() {
		return
	}

	c.cycles += cycles
	for c.cycles >= ScanlineCycles {
		c.cycles -= ScanlineCycles
		c.IncrementLY()
	}
	c.setMode(modeAt(c.ly.Value(), c.cycles))
}

// setMode updates the STAT mode bits, requesting an LCD
// interrupt when the mode changes to one whose STAT
// interrupt is enabled.
func (c *Controller) setMode(m Mode) {
	if c.Mode() == m {
		return
	}
	c.stat.Set(c.stat.Value()&^0b11 | uint8(m))
	if b := m.interruptBit(); b != 0xFF && bits.Test(c.stat.Value(), b) {
		c.irq.Request(interrupts.LCD)
	}
}

// compare updates the coincidence flag, requesting an LCD
// interrupt on a rising edge when enabled.
func (c *Controller) compare() {
	equal := c.ly.Value() == c.lyc.Value()
	was := bits.Test(c.stat.Value(), coincidenceFlag)
	c.stat.Set(bits.SetTo(c.stat.Value(), coincidenceFlag, equal))
	if equal && !was && bits.Test(c.stat.Value(), coincidenceInterrupt) {
		c.irq.Request(interrupts.LCD)
	}
}
