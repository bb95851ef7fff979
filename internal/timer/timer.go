// Package timer provides an implementation of the divider and
// the programmable timer. The frequency of the timer can be
// configured using the types.TAC register.
package timer

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/internal/types/registers"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// DividerPeriod is the number of cycles between DIV increments.
const DividerPeriod = 256

// periods maps TAC bits 0-1 to the number of cycles between
// TIMA increments.
var periods = [4]uint16{1024, 16, 64, 256}

// Controller drives DIV and TIMA from the cycles consumed by
// the CPU, requesting a timer interrupt when TIMA overflows.
type Controller struct {
	div  *registers.Hardware
	tima *registers.Hardware
	tma  *registers.Hardware
	tac  *registers.Hardware

	divCycles   uint16
	timerCycles uint16

	irq *interrupts.Service
}

// NewController returns a new timer controller, with its
// registers mapped into regs.
func NewController(regs *registers.Set, irq *interrupts.Service) *Controller {
	c := &Controller{irq: irq}

	c.div = regs.Register(types.DIV, registers.IsReadable(), registers.WithWriteFunc(func(h *registers.Hardware, _ uint8) {
		// any write resets the divider
		h.Reset()
		c.divCycles = 0
	}))
	c.tima = regs.Register(types.TIMA, registers.IsReadableWritable())
	c.tma = regs.Register(types.TMA, registers.IsReadableWritable())
	c.tac = regs.Register(types.TAC, registers.Mask(0xF8))

	return c
}

// Enabled returns true if TAC bit 2 is set.
func (c *Controller) Enabled() bool {
	return c.tac.Value()&bits.Bit2 != 0
}

// Period returns the number of cycles between TIMA increments
// for the clock currently selected by TAC.
func (c *Controller) Period() uint16 {
	return periods[c.tac.Value()&0b11]
}

// IncrementDiv increments DIV, wrapping at 0xFF.
func (c *Controller) IncrementDiv() {
	c.div.Increment()
}

// IncrementTIMA increments TIMA. On overflow TIMA is reloaded
// from TMA and a timer interrupt is requested.
func (c *Controller) IncrementTIMA() {
	if c.tima.Increment() == 0 {
		c.tima.Set(c.tma.Value())
		c.irq.Request(interrupts.Timer)
	}
}

// Tick advances the controller by the given number of cycles.
func (c *Controller) Tick(cycles uint16) {
	c.divCycles += cycles
	for c.divCycles >= DividerPeriod {
		c.divCycles -= DividerPeriod
		c.IncrementDiv()
	}

	if !c.Enabled() {
		return
	}
	c.timerCycles += cycles
	for period := c.Period(); c.timerCycles >= period; c.timerCycles -= period {
		c.IncrementTIMA()
	}
}
