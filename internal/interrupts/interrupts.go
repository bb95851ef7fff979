// Package interrupts implements the interrupt enable (IE) and
// interrupt flag (IF) latches.
package interrupts

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/internal/types/registers"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Source identifies an interrupt source. The value of a Source
// is its bit index in IE and IF, which is also its priority,
// with 0 being the highest.
type Source uint8

const (
	// VBlank is requested every time the LCD enters VBlank.
	VBlank Source = iota
	// LCD is requested by the STAT register when one of its
	// enabled conditions is met.
	LCD
	// Timer is requested when TIMA overflows.
	Timer
	// Serial is requested when a serial transfer completes.
	Serial
	// Joypad is requested when a selected button is pressed.
	Joypad
)

// sources is the number of interrupt sources.
const sources = 5

var sourceNames = [sources]string{"VBlank", "LCD", "Timer", "Serial", "Joypad"}

func (s Source) String() string {
	if s < sources {
		return sourceNames[s]
	}
	return "Unknown"
}

// Vector returns the address the CPU jumps to when servicing s.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

// Service holds the interrupt latches. When an interrupt is
// requested, the corresponding bit in Flag is set. When it
// is enabled, the corresponding bit in Enable is set. The
// master enable (IME) lives in the CPU.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service, with IF mapped into regs.
// IE sits outside of the I/O window, so it is dispatched
// directly by the address space.
func NewService(regs *registers.Set) *Service {
	s := &Service{}
	regs.RegisterFunc(
		types.IF,
		func(v uint8) {
			s.Flag = v & 0x1F // only the first 5 bits are used
		}, func() uint8 {
			return s.Flag | 0xE0 // the upper 3 bits are always set
		},
	)
	return s
}

// Enabled returns true if src is enabled.
func (s *Service) Enabled(src Source) bool {
	return bits.Test(s.Enable, uint8(src))
}

// Requested returns true if src has been requested.
func (s *Service) Requested(src Source) bool {
	return bits.Test(s.Flag, uint8(src))
}

// Request requests src by setting its bit in Flag.
func (s *Service) Request(src Source) {
	s.Flag = bits.Set(s.Flag, uint8(src))
}

// Clear clears the request for src.
func (s *Service) Clear(src Source) {
	s.Flag = bits.Reset(s.Flag, uint8(src))
}

// Pending returns true if any enabled interrupt has been
// requested.
func (s *Service) Pending() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Next returns the highest priority pending Source, without
// acknowledging it.
func (s *Service) Next() (Source, bool) {
	pending := s.Enable & s.Flag
	for i := Source(0); i < sources; i++ {
		if bits.Test(pending, uint8(i)) {
			return i, true
		}
	}
	return 0, false
}

// Vector acknowledges the highest priority pending interrupt,
// clearing its request, and returns its vector. 0 is returned
// when nothing is pending.
func (s *Service) Vector() uint16 {
	src, ok := s.Next()
	if !ok {
		return 0
	}
	s.Clear(src)
	return src.Vector()
}
