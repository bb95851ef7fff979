package cpu

// add adds n (and the carry flag, if withCarry) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	result := uint16(c.A) + uint16(n) + uint16(carry)
	halfCarry := c.A&0x0F+n&0x0F+carry > 0x0F
	c.A = uint8(result)
	c.setFlags(c.A == 0, false, halfCarry, result > 0xFF)
}

// sub subtracts n (and the carry flag, if withCarry) from the
// A Register, storing the result if store is set. CP is a
// subtraction whose result is discarded.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry, store bool) {
	var carry int16
	if withCarry {
		carry = int16(c.carryBit())
	}
	result := int16(c.A) - int16(n) - carry
	halfCarry := int16(c.A&0x0F)-int16(n&0x0F)-carry < 0
	if store {
		c.A = uint8(result)
	}
	c.setFlags(uint8(result) == 0, true, halfCarry, result < 0)
}

// and performs a bitwise AND operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// increment returns n + 1.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, n&0x0F == 0x0F)
	return result
}

// decrement returns n - 1.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagSubtract, true)
	c.setFlag(FlagHalfCarry, n&0x0F == 0)
	return result
}

// addHL adds n to HL.
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	result := uint32(hl) + uint32(n)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, hl&0x0FFF+n&0x0FFF > 0x0FFF)
	c.setFlag(FlagCarry, result > 0xFFFF)
	c.HL.SetUint16(uint16(result))
}

// addSPSigned returns SP + e, as used by ADD SP, e8 and
// LD HL, SP+e8.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	result := c.SP + uint16(int8(e))
	c.setFlags(false, false, c.SP&0x0F+uint16(e&0x0F) > 0x0F, c.SP&0xFF+uint16(e) > 0xFF)
	return result
}

// decimalAdjust adjusts the A Register so that it holds the
// correct binary coded decimal result of the previous
// addition or subtraction.
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	var adjust uint8
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) || c.A&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || c.A > 0x99 {
			adjust |= 0x60
			carry = true
		}
		c.A += adjust
	} else {
		if c.isFlagSet(FlagHalfCarry) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		c.A -= adjust
	}
	c.setFlag(FlagZero, c.A == 0)
	c.setFlag(FlagHalfCarry, false)
	c.setFlag(FlagCarry, carry)
}

// rotate applies a rotate or shift operation to n, returning
// the result. The accumulator forms (RLCA, RRCA, RLA, RRA)
// always reset the zero flag.
//
// Flags affected:
//
//	Z - Set if result is zero (reset for accumulator forms).
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out.
func (c *CPU) rotate(op Op, n uint8) uint8 {
	var result, out uint8
	switch op {
	case OpRLC, OpRLCA:
		out = n >> 7
		result = n<<1 | out
	case OpRRC, OpRRCA:
		out = n & 1
		result = n>>1 | out<<7
	case OpRL, OpRLA:
		out = n >> 7
		result = n<<1 | c.carryBit()
	case OpRR, OpRRA:
		out = n & 1
		result = n>>1 | c.carryBit()<<7
	case OpSLA:
		out = n >> 7
		result = n << 1
	case OpSRA:
		out = n & 1
		result = n>>1 | n&0x80
	case OpSRL:
		out = n & 1
		result = n >> 1
	case OpSWAP:
		result = n<<4 | n>>4
	}

	zero := result == 0
	switch op {
	case OpRLCA, OpRRCA, OpRLA, OpRRA:
		zero = false
	}
	c.setFlags(zero, false, false, out == 1)
	return result
}

// testBit tests bit b of n.
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(b, n uint8) {
	c.setFlag(FlagZero, n&(1<<b) == 0)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, true)
}
