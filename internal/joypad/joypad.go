// Package joypad provides an implementation of the joypad
// register. The collaborator driving the console reports
// button presses, and the CPU reads them back through P1.
package joypad

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/internal/types/registers"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Button represents a physical button.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// pressed holds a 1 for every pressed button, the lower
	// nibble for the action buttons and the upper nibble for
	// the direction buttons.
	pressed uint8
	p1      *registers.Hardware
	irq     *interrupts.Service
}

// New returns a new joypad state, with P1 mapped into regs.
func New(regs *registers.Set, irq *interrupts.Service) *State {
	s := &State{irq: irq}
	s.p1 = regs.Register(types.P1,
		registers.IsWritableMasked(bits.Bit4|bits.Bit5),
		registers.WithReadFunc(func(h *registers.Hardware) uint8 {
			return 0xC0 | h.Value() | ^s.selected()&0x0F
		}),
	)
	s.p1.Set(bits.Bit4 | bits.Bit5)
	return s
}

// selected returns the pressed state of the button groups
// selected by P1.
func (s *State) selected() uint8 {
	var d uint8
	if s.p1.Value()&bits.Bit4 == 0 {
		d |= s.pressed >> 4
	}
	if s.p1.Value()&bits.Bit5 == 0 {
		d |= s.pressed & 0x0F
	}
	return d
}

// Press presses a button, requesting a joypad interrupt if
// the button's group is selected.
func (s *State) Press(button Button) {
	before := s.selected()
	s.pressed = bits.Set(s.pressed, button)
	if s.selected() != before {
		s.irq.Request(interrupts.Joypad)
	}
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.pressed = bits.Reset(s.pressed, button)
}
