package cpu

import "fmt"

// OperandKind describes how an Operand is resolved.
type OperandKind uint8

const (
	// OperandNone marks an unused operand.
	OperandNone OperandKind = iota
	// OperandReg is an 8 or 16-bit register.
	OperandReg
	// OperandIndirect is the byte addressed by a register
	// pair, such as (HL) or (HL-).
	OperandIndirect
	// OperandHighC is the byte at 0xFF00 + C.
	OperandHighC
	// OperandImm8 is an 8-bit immediate.
	OperandImm8
	// OperandImm16 is a 16-bit immediate.
	OperandImm16
	// OperandAddr is the byte (or word) at a 16-bit immediate
	// address.
	OperandAddr
	// OperandHighImm is the byte at 0xFF00 + an 8-bit immediate.
	OperandHighImm
	// OperandSigned8 is a signed 8-bit immediate, used as the
	// displacement of JR and ADD SP.
	OperandSigned8
	// OperandSPOffset is SP plus a signed 8-bit immediate.
	OperandSPOffset
	// OperandCond is a branch condition.
	OperandCond
	// OperandBit is the bit index of BIT, RES and SET.
	OperandBit
	// OperandVector is the target of RST.
	OperandVector
)

// Condition is the condition of a conditional branch.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
)

var condNames = [4]string{"NZ", "Z", "NC", "C"}

func (c Condition) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return "?"
}

// Operand is a source or destination of an Instruction.
type Operand struct {
	Kind  OperandKind
	Reg   Reg
	Cond  Condition
	Value uint16
}

// reg returns a register operand.
func reg(r Reg) Operand {
	return Operand{Kind: OperandReg, Reg: r}
}

// indirect returns an operand addressing memory through r.
func indirect(r Reg) Operand {
	return Operand{Kind: OperandIndirect, Reg: r}
}

// cond returns a condition operand.
func cond(c Condition) Operand {
	return Operand{Kind: OperandCond, Cond: c}
}

// imm returns an immediate operand of the given kind.
func imm(kind OperandKind, v uint16) Operand {
	return Operand{Kind: kind, Value: v}
}

// IsMemory returns true if the operand refers to memory.
func (o Operand) IsMemory() bool {
	switch o.Kind {
	case OperandIndirect, OperandHighC, OperandAddr, OperandHighImm:
		return true
	}
	return false
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandReg:
		return o.Reg.String()
	case OperandIndirect:
		return "(" + o.Reg.String() + ")"
	case OperandHighC:
		return "(C)"
	case OperandImm8:
		return fmt.Sprintf("0x%02X", o.Value)
	case OperandImm16:
		return fmt.Sprintf("0x%04X", o.Value)
	case OperandAddr:
		return fmt.Sprintf("(0x%04X)", o.Value)
	case OperandHighImm:
		return fmt.Sprintf("(0xFF%02X)", o.Value)
	case OperandSigned8:
		return fmt.Sprintf("%+d", int8(o.Value))
	case OperandSPOffset:
		return fmt.Sprintf("SP%+d", int8(o.Value))
	case OperandCond:
		return o.Cond.String()
	case OperandBit:
		return fmt.Sprintf("%d", o.Value)
	case OperandVector:
		return fmt.Sprintf("0x%02X", o.Value)
	}
	return ""
}
