package cpu

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction. Conditional branches
// carry their condition in Dst and their target in Src.
type Instruction struct {
	// Address is where the instruction was decoded from.
	Address uint16
	// Opcode is the opcode byte, following 0xCB when Prefixed.
	Opcode   uint8
	Prefixed bool

	Op  Op
	Dst Operand
	Src Operand

	// Length is the encoded length in bytes, including the
	// prefix and any immediates.
	Length uint8
	// Cycles is the number of clock cycles taken, or the
	// number taken when a branch is not taken.
	Cycles uint8
	// BranchCycles is the number of clock cycles taken when
	// a conditional branch is taken.
	BranchCycles uint8
}

// String returns the disassembly of the instruction.
func (i Instruction) String() string {
	var operands []string
	if i.Dst.Kind != OperandNone {
		operands = append(operands, i.Dst.String())
	}
	if i.Src.Kind != OperandNone {
		operands = append(operands, i.Src.String())
	}
	if len(operands) == 0 {
		return i.Op.String()
	}
	return fmt.Sprintf("%s %s", i.Op, strings.Join(operands, ", "))
}

// Conditional returns true if the instruction only branches
// when its condition holds.
func (i Instruction) Conditional() bool {
	return i.Dst.Kind == OperandCond
}

// cycles holds the number of clock cycles taken by each
// unprefixed opcode, or by a conditional branch that is not
// taken. Illegal opcodes are 0.
var cycles = [256]uint8{
	//0  1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	4, 12, 8, 8, 4, 4, 8, 4, 20, 8, 8, 8, 4, 4, 8, 4, // 0x00
	4, 12, 8, 8, 4, 4, 8, 4, 12, 8, 8, 8, 4, 4, 8, 4, // 0x10
	8, 12, 8, 8, 4, 4, 8, 4, 8, 8, 8, 8, 4, 4, 8, 4, // 0x20
	8, 12, 8, 8, 12, 12, 12, 4, 8, 8, 8, 8, 4, 4, 8, 4, // 0x30
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x40
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x50
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x60
	8, 8, 8, 8, 8, 8, 4, 8, 4, 4, 4, 4, 4, 4, 8, 4, // 0x70
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x80
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x90
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0xA0
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0xB0
	8, 12, 12, 16, 12, 16, 8, 16, 8, 16, 12, 4, 12, 24, 8, 16, // 0xC0
	8, 12, 12, 0, 12, 16, 8, 16, 8, 16, 12, 0, 12, 0, 8, 16, // 0xD0
	12, 12, 8, 0, 0, 16, 8, 16, 16, 4, 16, 0, 0, 0, 8, 16, // 0xE0
	12, 12, 8, 4, 0, 16, 8, 16, 12, 8, 16, 4, 0, 0, 8, 16, // 0xF0
}

// branchPenalty returns the extra cycles taken by op when its
// condition holds.
func branchPenalty(op Op) uint8 {
	switch op {
	case OpJR, OpJP:
		return 4
	case OpCALL, OpRET:
		return 12
	}
	return 0
}

// prefixedCycles returns the cycles taken by a 0xCB prefixed
// instruction on the given operand.
func prefixedCycles(op Op, target Operand) uint8 {
	switch {
	case target.Kind != OperandIndirect:
		return 8
	case op == OpBIT:
		return 12
	default:
		return 16
	}
}
