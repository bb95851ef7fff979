package cpu

// Execute executes instr, which must be located at PC, and
// returns the number of cycles taken. PC is advanced past the
// instruction before it executes, so control flow operations
// overwrite it with their target.
func (c *CPU) Execute(instr Instruction) (uint8, error) {
	c.PC += uint16(instr.Length)
	ticks := instr.Cycles

	switch instr.Op {
	case OpNOP:
	case OpLD, OpLDH:
		if wide(instr.Dst) || wide(instr.Src) {
			c.write16(instr.Dst, c.read16(instr.Src))
		} else {
			c.write8(instr.Dst, c.read8(instr.Src))
		}
	case OpINC:
		if wide(instr.Dst) {
			c.write16(instr.Dst, c.read16(instr.Dst)+1)
		} else {
			c.write8(instr.Dst, c.increment(c.read8(instr.Dst)))
		}
	case OpDEC:
		if wide(instr.Dst) {
			c.write16(instr.Dst, c.read16(instr.Dst)-1)
		} else {
			c.write8(instr.Dst, c.decrement(c.read8(instr.Dst)))
		}
	case OpADD:
		switch instr.Dst.Reg {
		case RegHL:
			c.addHL(c.read16(instr.Src))
		case RegSP:
			c.SP = c.addSPSigned(uint8(instr.Src.Value))
		default:
			c.add(c.read8(instr.Src), false)
		}
	case OpADC:
		c.add(c.read8(instr.Src), true)
	case OpSUB:
		c.sub(c.read8(instr.Src), false, true)
	case OpSBC:
		c.sub(c.read8(instr.Src), true, true)
	case OpCP:
		c.sub(c.read8(instr.Src), false, false)
	case OpAND:
		c.and(c.read8(instr.Src))
	case OpXOR:
		c.xor(c.read8(instr.Src))
	case OpOR:
		c.or(c.read8(instr.Src))

	case OpJP:
		if c.condition(instr) {
			c.PC = c.read16(instr.Src)
			ticks = instr.branchTicks()
		}
	case OpJR:
		if c.condition(instr) {
			c.PC += uint16(int8(instr.Src.Value))
			ticks = instr.branchTicks()
		}
	case OpCALL:
		if c.condition(instr) {
			c.push(c.PC)
			c.PC = instr.Src.Value
			ticks = instr.branchTicks()
		}
	case OpRET:
		if c.condition(instr) {
			c.PC = c.pop()
			ticks = instr.branchTicks()
		}
	case OpRETI:
		c.PC = c.pop()
		c.ime = true
	case OpRST:
		c.push(c.PC)
		c.PC = instr.Src.Value
	case OpPUSH:
		c.push(c.read16(instr.Dst))
	case OpPOP:
		c.write16(instr.Dst, c.pop())

	case OpRLCA, OpRRCA, OpRLA, OpRRA:
		c.A = c.rotate(instr.Op, c.A)
	case OpDAA:
		c.decimalAdjust()
	case OpCPL:
		c.A = ^c.A
		c.setFlag(FlagSubtract, true)
		c.setFlag(FlagHalfCarry, true)
	case OpSCF:
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, true)
	case OpCCF:
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, !c.isFlagSet(FlagCarry))
	case OpHALT, OpSTOP:
		c.halted = true
	case OpDI:
		c.ime = false
		c.eiPending = false
	case OpEI:
		c.eiPending = true

	case OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL:
		c.write8(instr.Dst, c.rotate(instr.Op, c.read8(instr.Dst)))
	case OpBIT:
		c.testBit(uint8(instr.Dst.Value), c.read8(instr.Src))
	case OpRES:
		c.write8(instr.Src, c.read8(instr.Src)&^(1<<instr.Dst.Value))
	case OpSET:
		c.write8(instr.Src, c.read8(instr.Src)|1<<instr.Dst.Value)

	default:
		c.PC = instr.Address
		return 0, &ExecuteError{Op: instr.Op, PC: instr.Address}
	}

	return ticks, nil
}

// branchTicks returns the cycles taken by instr when its
// branch is taken.
func (i Instruction) branchTicks() uint8 {
	if i.Conditional() {
		return i.BranchCycles
	}
	return i.Cycles
}

// condition returns true if instr is unconditional, or if its
// condition holds.
func (c *CPU) condition(instr Instruction) bool {
	if !instr.Conditional() {
		return true
	}
	switch instr.Dst.Cond {
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}

// wide returns true if o is a 16-bit value.
func wide(o Operand) bool {
	switch o.Kind {
	case OperandReg:
		return o.Reg.Wide()
	case OperandImm16, OperandSPOffset:
		return true
	}
	return false
}

// address resolves the address of a memory operand, applying
// the post increment or decrement of (HL+) and (HL-).
func (c *CPU) address(o Operand) uint16 {
	switch o.Kind {
	case OperandIndirect:
		p := c.pair(o.Reg)
		addr := p.Uint16()
		switch o.Reg {
		case RegHLI:
			p.SetUint16(addr + 1)
		case RegHLD:
			p.SetUint16(addr - 1)
		}
		return addr
	case OperandHighC:
		return 0xFF00 | uint16(c.C)
	case OperandHighImm:
		return 0xFF00 | o.Value
	default:
		return o.Value
	}
}

// read8 resolves an 8-bit source operand.
func (c *CPU) read8(o Operand) uint8 {
	switch o.Kind {
	case OperandReg:
		if r := c.register(o.Reg); r != nil {
			return *r
		}
		return 0xFF
	case OperandImm8, OperandSigned8, OperandBit:
		return uint8(o.Value)
	default:
		return c.bus.Read(c.address(o))
	}
}

// write8 stores to an 8-bit destination operand.
func (c *CPU) write8(o Operand, v uint8) {
	switch o.Kind {
	case OperandReg:
		if r := c.register(o.Reg); r != nil {
			*r = v
		}
	case OperandIndirect, OperandHighC, OperandHighImm, OperandAddr:
		c.write(c.address(o), v)
	}
}

// read16 resolves a 16-bit source operand.
func (c *CPU) read16(o Operand) uint16 {
	switch o.Kind {
	case OperandReg:
		return c.Register(o.Reg)
	case OperandSPOffset:
		return c.addSPSigned(uint8(o.Value))
	default:
		return o.Value
	}
}

// write16 stores to a 16-bit destination operand. Words are
// stored to memory little-endian.
func (c *CPU) write16(o Operand, v uint16) {
	switch o.Kind {
	case OperandReg:
		c.SetRegister(o.Reg, v)
	case OperandAddr:
		c.write(o.Value, uint8(v))
		c.write(o.Value+1, uint8(v>>8))
	}
}
