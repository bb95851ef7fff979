package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// Registers holds the 8-bit registers, as well as the 16-bit
// register pairs that alias them.
type Registers struct {
	A types.Register
	F types.Register
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	H types.Register
	L types.Register

	AF *types.RegisterPair
	BC *types.RegisterPair
	DE *types.RegisterPair
	HL *types.RegisterPair
}

// newRegisters returns a zeroed register file with its pairs
// wired to the individual registers. The lower nibble of F can
// never be set through AF.
func newRegisters() *Registers {
	r := &Registers{}
	r.AF = types.NewMaskedRegisterPair(&r.A, &r.F, 0xF0)
	r.BC = types.NewRegisterPair(&r.B, &r.C)
	r.DE = types.NewRegisterPair(&r.D, &r.E)
	r.HL = types.NewRegisterPair(&r.H, &r.L)
	return r
}

// Reg identifies a register or register pair in an Operand.
type Reg uint8

const (
	RegNone Reg = iota
	RegA
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
	RegPC
	// RegHLI is HL, incremented after it is used as an address.
	RegHLI
	// RegHLD is HL, decremented after it is used as an address.
	RegHLD
)

var regNames = [...]string{
	RegNone: "",
	RegA:    "A",
	RegF:    "F",
	RegB:    "B",
	RegC:    "C",
	RegD:    "D",
	RegE:    "E",
	RegH:    "H",
	RegL:    "L",
	RegAF:   "AF",
	RegBC:   "BC",
	RegDE:   "DE",
	RegHL:   "HL",
	RegSP:   "SP",
	RegPC:   "PC",
	RegHLI:  "HL+",
	RegHLD:  "HL-",
}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return "?"
}

// Wide returns true if r is a 16-bit register.
func (r Reg) Wide() bool {
	return r >= RegAF
}

// register returns a pointer to the 8-bit register r, or nil
// if r is not an 8-bit register.
func (r *Registers) register(reg Reg) *types.Register {
	switch reg {
	case RegA:
		return &r.A
	case RegF:
		return &r.F
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	return nil
}

// pair returns the register pair for reg, or nil if reg is not
// one of AF, BC, DE or HL.
func (r *Registers) pair(reg Reg) *types.RegisterPair {
	switch reg {
	case RegAF:
		return r.AF
	case RegBC:
		return r.BC
	case RegDE:
		return r.DE
	case RegHL, RegHLI, RegHLD:
		return r.HL
	}
	return nil
}
