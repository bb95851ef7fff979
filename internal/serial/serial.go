// Package serial implements the serial port registers. A
// transfer started with the internal clock completes
// immediately.
package serial

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/internal/types/registers"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Controller is the serial controller. It is responsible for
// sending and receiving data to and from the attached Device,
// and for requesting serial interrupts.
type Controller struct {
	sb *registers.Hardware
	sc *registers.Hardware

	AttachedDevice Device // the device that is attached to this controller.
	irq            *interrupts.Service
}

// NewController creates a new Controller, with SB and SC
// mapped into regs. By default, the Controller is attached to
// a device that acts as if no cable is plugged in.
func NewController(regs *registers.Set, irq *interrupts.Service) *Controller {
	c := &Controller{
		AttachedDevice: nullDevice{},
		irq:            irq,
	}
	c.sb = regs.Register(types.SB, registers.IsReadableWritable())
	c.sc = regs.Register(types.SC,
		registers.IsReadableMasked(0x7E), // bits 1-6 are unused
		registers.WithWriteFunc(func(h *registers.Hardware, v uint8) {
			h.Set(v & (bits.Bit7 | bits.Bit0))
			if v&bits.Bit7 != 0 && v&bits.Bit0 != 0 {
				c.transfer()
			}
		}),
	)
	return c
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// transfer exchanges SB with the attached device, clears the
// transfer flag and requests a serial interrupt.
func (c *Controller) transfer() {
	c.sb.Set(c.AttachedDevice.Exchange(c.sb.Value()))
	c.sc.Set(bits.Reset(c.sc.Value(), 7))
	c.irq.Request(interrupts.Serial)
}
