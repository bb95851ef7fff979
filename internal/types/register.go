package types

// Register represents an 8-bit CPU register.
type Register = uint8

// RegisterPair represents a pair of Registers which are
// accessed together as a single 16-bit value. The High
// register holds the most significant byte.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low byte on write, used to
	// keep the lower nibble of the flag register clear.
	mask uint8
}

// NewRegisterPair returns a RegisterPair over high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xFF}
}

// NewMaskedRegisterPair returns a RegisterPair whose low
// register only retains the bits set in mask when written.
func NewMaskedRegisterPair(high, low *Register, mask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}
