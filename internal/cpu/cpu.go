// Package cpu implements the instruction decoder and execution
// engine of the SM83 processor.
package cpu

import (
	"github.com/thelolagemann/gbcore/pkg/bits"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ClockSpeed is the clock speed of the CPU, in cycles per second.
const ClockSpeed = 4194304

// interruptCycles is the number of cycles taken to dispatch
// an interrupt.
const interruptCycles = 20

// Bus is the view of the address space used by the CPU.
type Bus interface {
	Reader
	Write(address uint16, value uint8) error
	// InterruptPending returns true if any enabled interrupt
	// has been requested.
	InterruptPending() bool
	// AcknowledgeInterrupt clears the highest priority pending
	// interrupt and returns its vector.
	AcknowledgeInterrupt() uint16
}

// CPU represents the processor. It is responsible for executing
// instructions and dispatching interrupts.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	*Registers

	// ime is the interrupt master enable.
	ime bool
	// eiPending is set by EI, enabling ime after the
	// following instruction.
	eiPending bool
	// halted is set by HALT and STOP, and cleared when an
	// interrupt becomes pending.
	halted bool

	bus Bus
	log log.Logger
}

// NewCPU creates a new CPU, with every register zeroed, that
// reads and writes through bus.
func NewCPU(bus Bus, l log.Logger) *CPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &CPU{
		Registers: newRegisters(),
		bus:       bus,
		log:       l,
	}
}

// IME returns the interrupt master enable.
func (c *CPU) IME() bool {
	return c.ime
}

// SetIME sets the interrupt master enable.
func (c *CPU) SetIME(v bool) {
	c.ime = v
	c.eiPending = false
}

// Halted returns true if the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step runs the CPU for a single instruction, or dispatches a
// pending interrupt, and returns the number of cycles taken.
// While halted, Step idles for 4 cycles at a time.
func (c *CPU) Step() (uint8, error) {
	if c.halted {
		if !c.bus.InterruptPending() {
			return 4, nil
		}
		c.halted = false
	}

	if c.ime && c.bus.InterruptPending() {
		return c.executeInterrupt(), nil
	}

	instr, err := Decode(c.bus, c.PC)
	if err != nil {
		return 0, err
	}

	enableIME := c.eiPending
	ticks, err := c.Execute(instr)
	if enableIME && c.eiPending {
		c.ime = true
		c.eiPending = false
	}
	return ticks, err
}

// executeInterrupt disables interrupts, pushes PC onto the
// stack and jumps to the vector of the highest priority
// pending interrupt.
func (c *CPU) executeInterrupt() uint8 {
	c.ime = false
	vector := c.bus.AcknowledgeInterrupt()
	c.push(c.PC)
	c.PC = vector
	return interruptCycles
}

// write writes value to address. Memory faults are not fatal,
// they are logged and the write is discarded.
func (c *CPU) write(address uint16, value uint8) {
	if err := c.bus.Write(address, value); err != nil {
		c.log.Debugf("cpu: %v (PC 0x%04X)", err, c.PC)
	}
}

// push pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.SP--
	c.write(c.SP, bits.High(value))
	c.SP--
	c.write(c.SP, bits.Low(value))
}

// pop pops a 16-bit value from the stack.
func (c *CPU) pop() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++
	return bits.Join(high, low)
}

// Register returns the value of reg, zero extended for the
// 8-bit registers.
func (c *CPU) Register(reg Reg) uint16 {
	switch reg {
	case RegSP:
		return c.SP
	case RegPC:
		return c.PC
	}
	if r := c.register(reg); r != nil {
		return uint16(*r)
	}
	if p := c.pair(reg); p != nil {
		return p.Uint16()
	}
	return 0
}

// SetRegister sets reg to value, truncating to 8 bits for the
// 8-bit registers.
func (c *CPU) SetRegister(reg Reg, value uint16) {
	switch reg {
	case RegSP:
		c.SP = value
		return
	case RegPC:
		c.PC = value
		return
	case RegF:
		c.F = uint8(value) & 0xF0
		return
	}
	if r := c.register(reg); r != nil {
		*r = uint8(value)
	} else if p := c.pair(reg); p != nil {
		p.SetUint16(value)
	}
}
