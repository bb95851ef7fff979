package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

func (f Flag) String() string {
	switch f {
	case FlagZero:
		return "Z"
	case FlagSubtract:
		return "N"
	case FlagHalfCarry:
		return "H"
	case FlagCarry:
		return "C"
	}
	return "?"
}

// Flags lists every flag, from the most significant bit.
var Flags = [4]Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

// setFlag sets or clears a flag.
func (c *CPU) setFlag(flag Flag, v bool) {
	c.F = bits.SetTo(c.F, uint8(flag), v)
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.setFlag(FlagZero, zero)
	c.setFlag(FlagSubtract, subtract)
	c.setFlag(FlagHalfCarry, halfCarry)
	c.setFlag(FlagCarry, carry)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F, uint8(flag))
}

// IsFlagSet returns true if the given flag is set.
func (c *CPU) IsFlagSet(flag Flag) bool {
	return c.isFlagSet(flag)
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	return bits.Val(c.F, uint8(FlagCarry))
}
