// Package registers implements the memory mapped hardware
// registers found in the I/O window (0xFF00 - 0xFF7F).
package registers

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Hardware represents a hardware register. Each register
// decides how reads and writes made by the CPU are applied
// to its backing value.
type Hardware struct {
	value uint8

	read  func() uint8
	write func(value uint8)
}

// HardwareOpt is a function that configures a hardware register,
// such as making it readable, writable, or both.
type HardwareOpt func(*Hardware)

// IsReadable allows the hardware register to be read.
func IsReadable() HardwareOpt {
	return func(h *Hardware) {
		h.read = func() uint8 {
			return h.value
		}
	}
}

// IsWritable allows the hardware register to be written to.
func IsWritable() HardwareOpt {
	return func(h *Hardware) {
		h.write = func(value uint8) {
			h.value = value
		}
	}
}

// IsReadableWritable allows the hardware register to be read
// and written to.
func IsReadableWritable() HardwareOpt {
	return func(h *Hardware) {
		IsReadable()(h)
		IsWritable()(h)
	}
}

// IsReadableMasked allows the hardware register to be read, with
// mask OR'd into the value. Unused bits of a hardware register
// read as 1.
func IsReadableMasked(mask uint8) HardwareOpt {
	return func(h *Hardware) {
		h.read = func() uint8 {
			return h.value | mask
		}
	}
}

// IsWritableMasked allows the hardware register to be written,
// only storing the bits that are set in mask.
func IsWritableMasked(mask uint8) HardwareOpt {
	return func(h *Hardware) {
		h.write = func(value uint8) {
			h.value = value & mask
		}
	}
}

// Mask makes the register readable and writable, where the
// bits set in unused read back as 1 and are never stored.
func Mask(unused uint8) HardwareOpt {
	return func(h *Hardware) {
		IsReadableMasked(unused)(h)
		IsWritableMasked(^unused)(h)
	}
}

// PreserveOnWrite allows the register to be written, leaving
// the bits set in readOnly unchanged.
func PreserveOnWrite(readOnly uint8) HardwareOpt {
	return func(h *Hardware) {
		h.write = func(value uint8) {
			h.value = h.value&readOnly | value&^readOnly
		}
	}
}

// WithReadFunc allows the hardware register to be read with
// a custom read function.
func WithReadFunc(readFunc func(h *Hardware) uint8) HardwareOpt {
	return func(h *Hardware) {
		h.read = func() uint8 {
			return readFunc(h)
		}
	}
}

// WithWriteFunc allows the hardware register to be written to
// with a custom function.
func WithWriteFunc(writeFunc func(h *Hardware, value uint8)) HardwareOpt {
	return func(h *Hardware) {
		h.write = func(value uint8) {
			writeFunc(h, value)
		}
	}
}

// Read returns the value seen by the CPU. Registers that were
// not made readable read as 0xFF.
func (h *Hardware) Read() uint8 {
	if h.read == nil {
		return 0xFF
	}
	return h.read()
}

// Write applies a CPU write. Registers that were not made
// writable ignore the write.
func (h *Hardware) Write(value uint8) {
	if h.write != nil {
		h.write(value)
	}
}

// Increment increments the backing value, bypassing the write
// function, and returns the new value.
func (h *Hardware) Increment() uint8 {
	h.value++
	return h.value
}

// Reset sets the backing value to 0.
func (h *Hardware) Reset() {
	h.value = 0
}

// Set sets the backing value, bypassing the write function.
func (h *Hardware) Set(value uint8) {
	h.value = value
}

// Value returns the backing value, bypassing the read function.
func (h *Hardware) Value() uint8 {
	return h.value
}

// Set is the collection of hardware registers mapped into the
// I/O window of a single address space.
type Set struct {
	registers [0x80]*Hardware
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Register creates a new hardware register at the given address
// with the given options, and adds it to the Set.
func (s *Set) Register(address types.HardwareAddress, opts ...HardwareOpt) *Hardware {
	if address < types.IO || address > types.IOEnd {
		panic(fmt.Sprintf("registers: address 0x%04X outside of I/O window", address))
	}
	h := &Hardware{}
	for _, opt := range opts {
		opt(h)
	}
	s.registers[address&0x7F] = h
	return h
}

// RegisterFunc adds a register at the given address whose value
// is owned elsewhere, accessed through get and set.
func (s *Set) RegisterFunc(address types.HardwareAddress, set func(v uint8), get func() uint8) *Hardware {
	return s.Register(address,
		WithReadFunc(func(*Hardware) uint8 { return get() }),
		WithWriteFunc(func(_ *Hardware, v uint8) { set(v) }),
	)
}

// Get returns the register mapped at address, or nil.
func (s *Set) Get(address types.HardwareAddress) *Hardware {
	if address < types.IO || address > types.IOEnd {
		return nil
	}
	return s.registers[address&0x7F]
}

// Read reads the register at address. Unmapped addresses read
// as 0xFF.
func (s *Set) Read(address types.HardwareAddress) uint8 {
	if h := s.Get(address); h != nil {
		return h.Read()
	}
	return 0xFF
}

// Write writes value to the register at address, reporting
// whether a register was mapped there.
func (s *Set) Write(address types.HardwareAddress, value uint8) bool {
	h := s.Get(address)
	if h == nil {
		return false
	}
	h.Write(value)
	return true
}
