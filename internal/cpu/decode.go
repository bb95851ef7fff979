package cpu

// Reader is the read-only view of the address space used when
// decoding.
type Reader interface {
	Read(address uint16) uint8
}

// Opcodes are decoded from their bit fields:
//
//	7 6 5 4 3 2 1 0
//	 x  |  y  |  z
//	    | p |q|
var (
	// r8 indexes the 8-bit operands by z or y. Index 6 is (HL).
	r8 = [8]Operand{reg(RegB), reg(RegC), reg(RegD), reg(RegE), reg(RegH), reg(RegL), indirect(RegHL), reg(RegA)}
	// rp indexes the register pairs used by loads and arithmetic.
	rp = [4]Reg{RegBC, RegDE, RegHL, RegSP}
	// rp2 indexes the register pairs used by PUSH and POP.
	rp2 = [4]Reg{RegBC, RegDE, RegHL, RegAF}
	// alu indexes the accumulator operations.
	alu = [8]Op{OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP}
	// rot indexes the 0xCB prefixed rotate and shift operations.
	rot = [8]Op{OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL}
	// indirectA indexes the accumulator loads through a pair.
	indirectA = [4]Reg{RegBC, RegDE, RegHLI, RegHLD}
	// accumulator indexes the single byte accumulator and
	// flag operations found at x=0, z=7.
	accumulator = [8]Op{OpRLCA, OpRRCA, OpRLA, OpRRA, OpDAA, OpCPL, OpSCF, OpCCF}
)

// Decode decodes the instruction at address. The address space
// is only read. Illegal opcodes return a *DecodeError.
func Decode(r Reader, address uint16) (Instruction, error) {
	opcode := r.Read(address)
	if opcode == 0xCB {
		return decodePrefixed(r, address)
	}

	i := Instruction{Address: address, Opcode: opcode, Length: 1, Cycles: cycles[opcode]}
	d8 := func() uint16 {
		i.Length = 2
		return uint16(r.Read(address + 1))
	}
	d16 := func() uint16 {
		i.Length = 3
		return uint16(r.Read(address+1)) | uint16(r.Read(address+2))<<8
	}

	x, y, z := opcode>>6, opcode>>3&7, opcode&7
	p, q := y>>1, y&1

	switch x {
	case 0:
		switch z {
		case 0:
			switch {
			case y == 0:
				i.Op = OpNOP
			case y == 1:
				i.Op, i.Dst, i.Src = OpLD, imm(OperandAddr, d16()), reg(RegSP)
			case y == 2:
				// STOP is followed by a padding byte
				i.Op = OpSTOP
				d8()
			case y == 3:
				i.Op, i.Src = OpJR, imm(OperandSigned8, d8())
			default:
				i.Op, i.Dst, i.Src = OpJR, cond(Condition(y-4)), imm(OperandSigned8, d8())
			}
		case 1:
			if q == 0 {
				i.Op, i.Dst, i.Src = OpLD, reg(rp[p]), imm(OperandImm16, d16())
			} else {
				i.Op, i.Dst, i.Src = OpADD, reg(RegHL), reg(rp[p])
			}
		case 2:
			if q == 0 {
				i.Op, i.Dst, i.Src = OpLD, indirect(indirectA[p]), reg(RegA)
			} else {
				i.Op, i.Dst, i.Src = OpLD, reg(RegA), indirect(indirectA[p])
			}
		case 3:
			if q == 0 {
				i.Op, i.Dst = OpINC, reg(rp[p])
			} else {
				i.Op, i.Dst = OpDEC, reg(rp[p])
			}
		case 4:
			i.Op, i.Dst = OpINC, r8[y]
		case 5:
			i.Op, i.Dst = OpDEC, r8[y]
		case 6:
			i.Op, i.Dst, i.Src = OpLD, r8[y], imm(OperandImm8, d8())
		case 7:
			i.Op = accumulator[y]
		}
	case 1:
		if opcode == 0x76 {
			i.Op = OpHALT
		} else {
			i.Op, i.Dst, i.Src = OpLD, r8[y], r8[z]
		}
	case 2:
		i.Op, i.Dst, i.Src = alu[y], reg(RegA), r8[z]
	case 3:
		switch z {
		case 0:
			switch {
			case y < 4:
				i.Op, i.Dst = OpRET, cond(Condition(y))
			case y == 4:
				i.Op, i.Dst, i.Src = OpLDH, imm(OperandHighImm, d8()), reg(RegA)
			case y == 5:
				i.Op, i.Dst, i.Src = OpADD, reg(RegSP), imm(OperandSigned8, d8())
			case y == 6:
				i.Op, i.Dst, i.Src = OpLDH, reg(RegA), imm(OperandHighImm, d8())
			case y == 7:
				i.Op, i.Dst, i.Src = OpLD, reg(RegHL), imm(OperandSPOffset, d8())
			}
		case 1:
			if q == 0 {
				i.Op, i.Dst = OpPOP, reg(rp2[p])
				break
			}
			switch p {
			case 0:
				i.Op = OpRET
			case 1:
				i.Op = OpRETI
			case 2:
				i.Op, i.Src = OpJP, reg(RegHL)
			case 3:
				i.Op, i.Dst, i.Src = OpLD, reg(RegSP), reg(RegHL)
			}
		case 2:
			switch {
			case y < 4:
				i.Op, i.Dst, i.Src = OpJP, cond(Condition(y)), imm(OperandImm16, d16())
			case y == 4:
				i.Op, i.Dst, i.Src = OpLD, Operand{Kind: OperandHighC}, reg(RegA)
			case y == 5:
				i.Op, i.Dst, i.Src = OpLD, imm(OperandAddr, d16()), reg(RegA)
			case y == 6:
				i.Op, i.Dst, i.Src = OpLD, reg(RegA), Operand{Kind: OperandHighC}
			case y == 7:
				i.Op, i.Dst, i.Src = OpLD, reg(RegA), imm(OperandAddr, d16())
			}
		case 3:
			switch y {
			case 0:
				i.Op, i.Src = OpJP, imm(OperandImm16, d16())
			case 6:
				i.Op = OpDI
			case 7:
				i.Op = OpEI
			}
		case 4:
			if y < 4 {
				i.Op, i.Dst, i.Src = OpCALL, cond(Condition(y)), imm(OperandImm16, d16())
			}
		case 5:
			if q == 0 {
				i.Op, i.Dst = OpPUSH, reg(rp2[p])
			} else if p == 0 {
				i.Op, i.Src = OpCALL, imm(OperandImm16, d16())
			}
		case 6:
			i.Op, i.Dst, i.Src = alu[y], reg(RegA), imm(OperandImm8, d8())
		case 7:
			i.Op, i.Src = OpRST, imm(OperandVector, uint16(y)*8)
		}
	}

	if i.Op == OpInvalid {
		return Instruction{}, &DecodeError{Opcode: opcode, Address: address}
	}
	if i.Conditional() {
		i.BranchCycles = i.Cycles + branchPenalty(i.Op)
	}

	return i, nil
}

// decodePrefixed decodes the 0xCB prefixed instruction at
// address. Every prefixed opcode is valid.
func decodePrefixed(r Reader, address uint16) (Instruction, error) {
	opcode := r.Read(address + 1)
	x, y, z := opcode>>6, opcode>>3&7, opcode&7

	i := Instruction{Address: address, Opcode: opcode, Prefixed: true, Length: 2}
	switch x {
	case 0:
		i.Op, i.Dst = rot[y], r8[z]
	case 1:
		i.Op, i.Dst, i.Src = OpBIT, imm(OperandBit, uint16(y)), r8[z]
	case 2:
		i.Op, i.Dst, i.Src = OpRES, imm(OperandBit, uint16(y)), r8[z]
	case 3:
		i.Op, i.Dst, i.Src = OpSET, imm(OperandBit, uint16(y)), r8[z]
	}

	target := i.Dst
	if i.Src.Kind != OperandNone {
		target = i.Src
	}
	i.Cycles = prefixedCycles(i.Op, target)

	return i, nil
}
