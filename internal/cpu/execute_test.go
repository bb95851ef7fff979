package cpu

import (
	"testing"
)

// flags returns the flags of c as Z, N, H, C.
func flags(c *CPU) [4]bool {
	return [4]bool{
		c.isFlagSet(FlagZero),
		c.isFlagSet(FlagSubtract),
		c.isFlagSet(FlagHalfCarry),
		c.isFlagSet(FlagCarry),
	}
}

func TestExecute_DEC(t *testing.T) {
	for _, carry := range []bool{false, true} {
		for v := 0; v < 256; v++ {
			// DEC B
			c, _ := newTestCPU(0x05)
			c.B = uint8(v)
			c.setFlag(FlagCarry, carry)
			step(t, c, 1)

			want := uint8(v) - 1
			if c.B != want {
				t.Errorf("Expected B to be %#02x, got %#02x", want, c.B)
			}
			if c.isFlagSet(FlagZero) != (want == 0) {
				t.Errorf("Expected Z to be %t for %#02x", want == 0, v)
			}
			if !c.isFlagSet(FlagSubtract) {
				t.Errorf("Expected N to be set for %#02x", v)
			}
			if c.isFlagSet(FlagHalfCarry) != (v&0x0F == 0) {
				t.Errorf("Expected H to be %t for %#02x", v&0x0F == 0, v)
			}
			if c.isFlagSet(FlagCarry) != carry {
				t.Errorf("Expected C to be preserved for %#02x", v)
			}
		}
	}
}

func TestExecute_INC(t *testing.T) {
	// INC A
	c, _ := newTestCPU(0x3C)
	c.A = 0xFF
	c.setFlag(FlagCarry, true)
	step(t, c, 1)
	if c.A != 0 {
		t.Errorf("Expected A to wrap to 0, got %#02x", c.A)
	}
	if f := flags(c); f != [4]bool{true, false, true, true} {
		t.Errorf("Expected flags Z-HC, got %v", f)
	}
}

func TestExecute_XOR(t *testing.T) {
	for v := 0; v < 256; v++ {
		// XOR A
		c, _ := newTestCPU(0xAF)
		c.A = uint8(v)
		c.F = 0xF0
		step(t, c, 1)
		if c.A != 0 {
			t.Errorf("Expected A to be 0, got %#02x", c.A)
		}
		if c.F != 0x80 {
			t.Errorf("Expected F to be 0x80, got %#02x", c.F)
		}
	}
}

func TestExecute_XORRegister(t *testing.T) {
	// XOR B
	c, _ := newTestCPU(0xA8)
	c.A = 0x5A
	c.B = 0x0F
	c.F = 0x70
	step(t, c, 1)
	if c.A != 0x55 {
		t.Errorf("Expected A to be 0x55, got %#02x", c.A)
	}
	if f := flags(c); f != [4]bool{} {
		t.Errorf("Expected all flags to be reset, got %v", f)
	}
}

func TestExecute_Arithmetic(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		a       uint8
		carry   bool
		wantA   uint8
		flags   [4]bool
	}{
		{"ADD half carry", []uint8{0xC6, 0x01}, 0x0F, false, 0x10, [4]bool{false, false, true, false}},
		{"ADD carry", []uint8{0xC6, 0x01}, 0xFF, false, 0x00, [4]bool{true, false, true, true}},
		{"ADC", []uint8{0xCE, 0x01}, 0x01, true, 0x03, [4]bool{false, false, false, false}},
		{"SUB borrow", []uint8{0xD6, 0x01}, 0x00, false, 0xFF, [4]bool{false, true, true, true}},
		{"SUB zero", []uint8{0xD6, 0x42}, 0x42, false, 0x00, [4]bool{true, true, false, false}},
		{"SBC", []uint8{0xDE, 0x01}, 0x03, true, 0x01, [4]bool{false, true, false, false}},
		{"CP equal", []uint8{0xFE, 0x42}, 0x42, false, 0x42, [4]bool{true, true, false, false}},
		{"CP less", []uint8{0xFE, 0x43}, 0x42, false, 0x42, [4]bool{false, true, true, true}},
		{"AND", []uint8{0xE6, 0x0F}, 0xF0, true, 0x00, [4]bool{true, false, true, false}},
		{"OR", []uint8{0xF6, 0x0F}, 0xF0, true, 0xFF, [4]bool{false, false, false, false}},
		{"CPL", []uint8{0x2F}, 0x0F, true, 0xF0, [4]bool{false, true, true, true}},
		{"DAA add", []uint8{0xC6, 0x27, 0x27}, 0x15, false, 0x42, [4]bool{false, false, false, false}},
		{"DAA carry", []uint8{0xC6, 0x01, 0x27}, 0x99, false, 0x00, [4]bool{true, false, false, true}},
		{"DAA sub", []uint8{0xD6, 0x06, 0x27}, 0x42, false, 0x36, [4]bool{false, true, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(tt.program...)
			c.A = tt.a
			c.setFlag(FlagCarry, tt.carry)
			for c.PC < uint16(len(tt.program)) {
				step(t, c, 1)
			}
			if c.A != tt.wantA {
				t.Errorf("Expected A to be %#02x, got %#02x", tt.wantA, c.A)
			}
			if f := flags(c); f != tt.flags {
				t.Errorf("Expected flags %v, got %v", tt.flags, f)
			}
		})
	}
}

func TestExecute_Rotate(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		value   uint8
		carry   bool
		want    uint8
		flags   [4]bool
	}{
		{"RLCA", []uint8{0x07}, 0x80, false, 0x01, [4]bool{false, false, false, true}},
		{"RRCA", []uint8{0x0F}, 0x01, false, 0x80, [4]bool{false, false, false, true}},
		{"RLA", []uint8{0x17}, 0x80, false, 0x00, [4]bool{false, false, false, true}},
		{"RRA", []uint8{0x1F}, 0x00, true, 0x80, [4]bool{false, false, false, false}},
		{"RL A", []uint8{0xCB, 0x17}, 0x80, false, 0x00, [4]bool{true, false, false, true}},
		{"SLA A", []uint8{0xCB, 0x27}, 0x81, false, 0x02, [4]bool{false, false, false, true}},
		{"SRA A", []uint8{0xCB, 0x2F}, 0x81, false, 0xC0, [4]bool{false, false, false, true}},
		{"SRL A", []uint8{0xCB, 0x3F}, 0x01, false, 0x00, [4]bool{true, false, false, true}},
		{"SWAP A", []uint8{0xCB, 0x37}, 0xAB, true, 0xBA, [4]bool{false, false, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(tt.program...)
			c.A = tt.value
			c.setFlag(FlagCarry, tt.carry)
			step(t, c, 1)
			if c.A != tt.want {
				t.Errorf("Expected A to be %#02x, got %#02x", tt.want, c.A)
			}
			if f := flags(c); f != tt.flags {
				t.Errorf("Expected flags %v, got %v", tt.flags, f)
			}
		})
	}
}

func TestExecute_Bits(t *testing.T) {
	// BIT 7, H; SET 0, (HL); RES 7, (HL)
	c, b := newTestCPU(0xCB, 0x7C, 0xCB, 0xC6, 0xCB, 0xBE)
	c.HL.SetUint16(0x7F00)
	b.mem[0x7F00] = 0x80
	c.setFlag(FlagCarry, true)

	step(t, c, 1)
	if f := flags(c); f != [4]bool{true, false, true, true} {
		t.Errorf("Expected flags Z-HC, got %v", f)
	}

	ticks, _ := c.Step()
	if ticks != 16 {
		t.Errorf("Expected SET on (HL) to take 16 cycles, got %d", ticks)
	}
	step(t, c, 1)
	if b.mem[0x7F00] != 0x01 {
		t.Errorf("Expected (HL) to be 0x01, got %#02x", b.mem[0x7F00])
	}
}

func TestExecute_Loads(t *testing.T) {
	t.Run("HL increment and decrement", func(t *testing.T) {
		// LD (HL+), A; LD (HL-), A; LD A, (HL-)
		c, b := newTestCPU(0x22, 0x32, 0x3A)
		c.HL.SetUint16(0xC000)
		c.A = 0x42
		step(t, c, 2)
		if b.mem[0xC000] != 0x42 || b.mem[0xC001] != 0x42 {
			t.Errorf("Expected both writes to land, got %#02x %#02x", b.mem[0xC000], b.mem[0xC001])
		}
		if c.HL.Uint16() != 0xC000 {
			t.Errorf("Expected HL to be 0xC000, got %#04x", c.HL.Uint16())
		}
		b.mem[0xC000] = 0x99
		step(t, c, 1)
		if c.A != 0x99 || c.HL.Uint16() != 0xBFFF {
			t.Errorf("Expected A=0x99 HL=0xBFFF, got A=%#02x HL=%#04x", c.A, c.HL.Uint16())
		}
	})
	t.Run("high page", func(t *testing.T) {
		// LDH (0x80), A; LD C, 0x81; LD (C), A
		c, b := newTestCPU(0xE0, 0x80, 0x0E, 0x81, 0xE2)
		c.A = 0x11
		step(t, c, 3)
		if b.mem[0xFF80] != 0x11 || b.mem[0xFF81] != 0x11 {
			t.Errorf("Expected writes to 0xFF80 and 0xFF81, got %#02x %#02x", b.mem[0xFF80], b.mem[0xFF81])
		}
	})
	t.Run("store SP", func(t *testing.T) {
		// LD (0xC000), SP
		c, b := newTestCPU(0x08, 0x00, 0xC0)
		c.SP = 0xBEEF
		step(t, c, 1)
		if b.mem[0xC000] != 0xEF || b.mem[0xC001] != 0xBE {
			t.Errorf("Expected SP stored little-endian, got %#02x %#02x", b.mem[0xC000], b.mem[0xC001])
		}
	})
	t.Run("SP offset", func(t *testing.T) {
		// LD HL, SP-1; ADD SP, 2
		c, _ := newTestCPU(0xF8, 0xFF, 0xE8, 0x02)
		c.SP = 0x0001
		step(t, c, 1)
		if c.HL.Uint16() != 0x0000 {
			t.Errorf("Expected HL to be 0x0000, got %#04x", c.HL.Uint16())
		}
		if f := flags(c); f != [4]bool{false, false, true, true} {
			t.Errorf("Expected flags --HC, got %v", f)
		}
		step(t, c, 1)
		if c.SP != 0x0003 {
			t.Errorf("Expected SP to be 0x0003, got %#04x", c.SP)
		}
	})
	t.Run("ADD HL", func(t *testing.T) {
		// ADD HL, BC
		c, _ := newTestCPU(0x09)
		c.HL.SetUint16(0x0FFF)
		c.BC.SetUint16(0x0001)
		c.setFlag(FlagZero, true)
		step(t, c, 1)
		if c.HL.Uint16() != 0x1000 {
			t.Errorf("Expected HL to be 0x1000, got %#04x", c.HL.Uint16())
		}
		if f := flags(c); f != [4]bool{true, false, true, false} {
			t.Errorf("Expected flags Z-H-, got %v", f)
		}
	})
}

func TestExecute_Stack(t *testing.T) {
	t.Run("PUSH POP AF", func(t *testing.T) {
		// PUSH BC; POP AF
		c, b := newTestCPU(0xC5, 0xF1)
		c.SP = 0xFFFE
		c.BC.SetUint16(0x12FF)
		step(t, c, 1)
		if b.mem[0xFFFD] != 0x12 || b.mem[0xFFFC] != 0xFF {
			t.Errorf("Expected BC on the stack, got %#02x%02x", b.mem[0xFFFD], b.mem[0xFFFC])
		}
		step(t, c, 1)
		if c.A != 0x12 || c.F != 0xF0 {
			t.Errorf("Expected A=0x12 F=0xF0, got A=%#02x F=%#02x", c.A, c.F)
		}
		if c.SP != 0xFFFE {
			t.Errorf("Expected SP to be restored, got %#04x", c.SP)
		}
	})
	t.Run("CALL RET", func(t *testing.T) {
		// CALL 0x0010 ... 0x0010: RET
		program := make([]uint8, 0x11)
		copy(program, []uint8{0xCD, 0x10, 0x00})
		program[0x10] = 0xC9
		c, _ := newTestCPU(program...)
		c.SP = 0xFFFE

		ticks, _ := c.Step()
		if c.PC != 0x0010 || ticks != 24 {
			t.Errorf("Expected CALL to jump in 24 cycles, got PC=%#04x in %d", c.PC, ticks)
		}
		ticks, _ = c.Step()
		if c.PC != 0x0003 || ticks != 16 {
			t.Errorf("Expected RET to return in 16 cycles, got PC=%#04x in %d", c.PC, ticks)
		}
	})
	t.Run("RST", func(t *testing.T) {
		c, b := newTestCPU(0x00, 0xEF)
		c.SP = 0xFFFE
		step(t, c, 2)
		if c.PC != 0x0028 {
			t.Errorf("Expected PC to be 0x0028, got %#04x", c.PC)
		}
		if b.mem[0xFFFC] != 0x02 {
			t.Errorf("Expected return address 0x0002, got %#02x", b.mem[0xFFFC])
		}
	})
	t.Run("RETI", func(t *testing.T) {
		c, b := newTestCPU(0xD9)
		c.SP = 0xFFFC
		b.mem[0xFFFC], b.mem[0xFFFD] = 0x34, 0x12
		step(t, c, 1)
		if c.PC != 0x1234 || !c.IME() {
			t.Errorf("Expected RETI to return with IME enabled, got PC=%#04x IME=%t", c.PC, c.IME())
		}
	})
}

func TestExecute_ConditionalBranches(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		zero    bool
		pc      uint16
		ticks   uint8
	}{
		{"JR NZ taken", []uint8{0x20, 0x02}, false, 0x0004, 12},
		{"JR NZ not taken", []uint8{0x20, 0x02}, true, 0x0002, 8},
		{"JR Z backwards", []uint8{0x28, 0xFE}, true, 0x0000, 12},
		{"JP Z taken", []uint8{0xCA, 0x00, 0x20}, true, 0x2000, 16},
		{"JP Z not taken", []uint8{0xCA, 0x00, 0x20}, false, 0x0003, 12},
		{"CALL NZ taken", []uint8{0xC4, 0x00, 0x20}, false, 0x2000, 24},
		{"RET Z not taken", []uint8{0xC8}, false, 0x0001, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(tt.program...)
			c.SP = 0xFFFE
			c.setFlag(FlagZero, tt.zero)
			ticks, err := c.Step()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if c.PC != tt.pc {
				t.Errorf("Expected PC to be %#04x, got %#04x", tt.pc, c.PC)
			}
			if ticks != tt.ticks {
				t.Errorf("Expected %d cycles, got %d", tt.ticks, ticks)
			}
		})
	}
}

func TestExecute_CarryFlagOps(t *testing.T) {
	// SCF; CCF
	c, _ := newTestCPU(0x37, 0x3F)
	c.setFlag(FlagSubtract, true)
	step(t, c, 1)
	if !c.isFlagSet(FlagCarry) || c.isFlagSet(FlagSubtract) {
		t.Errorf("Expected SCF to set C and reset N")
	}
	step(t, c, 1)
	if c.isFlagSet(FlagCarry) {
		t.Errorf("Expected CCF to complement C")
	}
}
