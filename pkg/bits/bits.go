// Package bits provides small helpers for manipulating the
// individual bits of 8 and 16-bit values.
package bits

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// SetTo sets or resets the bit at the given index
// depending on v.
func SetTo(b, i uint8, v bool) uint8 {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}

// High returns the upper byte of a 16-bit value.
func High(v uint16) uint8 {
	return uint8(v >> 8)
}

// Low returns the lower byte of a 16-bit value.
func Low(v uint16) uint8 {
	return uint8(v)
}

// Join composes a 16-bit value from its upper and
// lower bytes.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}
