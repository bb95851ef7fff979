package cpu

import (
	"errors"
	"testing"
)

// memory is a Reader over a byte slice, reading 0 past its end.
type memory []uint8

func (m memory) Read(address uint16) uint8 {
	if int(address) < len(m) {
		return m[address]
	}
	return 0
}

var illegalOpcodes = []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func TestDecode(t *testing.T) {
	tests := []struct {
		bytes        memory
		want         string
		length       uint8
		cycles       uint8
		branchCycles uint8
	}{
		{memory{0x00}, "NOP", 1, 4, 0},
		{memory{0x3E, 0x05}, "LD A, 0x05", 2, 8, 0},
		{memory{0x05}, "DEC B", 1, 4, 0},
		{memory{0xC3, 0x00, 0x01}, "JP 0x0100", 3, 16, 0},
		{memory{0x01, 0x34, 0x12}, "LD BC, 0x1234", 3, 12, 0},
		{memory{0x08, 0x00, 0xC0}, "LD (0xC000), SP", 3, 20, 0},
		{memory{0x10, 0x00}, "STOP", 2, 4, 0},
		{memory{0x20, 0xFE}, "JR NZ, -2", 2, 8, 12},
		{memory{0x22}, "LD (HL+), A", 1, 8, 0},
		{memory{0x3A}, "LD A, (HL-)", 1, 8, 0},
		{memory{0x34}, "INC (HL)", 1, 12, 0},
		{memory{0x39}, "ADD HL, SP", 1, 8, 0},
		{memory{0x76}, "HALT", 1, 4, 0},
		{memory{0x7E}, "LD A, (HL)", 1, 8, 0},
		{memory{0xAF}, "XOR A, A", 1, 4, 0},
		{memory{0xC0}, "RET NZ", 1, 8, 20},
		{memory{0xC4, 0x00, 0x20}, "CALL NZ, 0x2000", 3, 12, 24},
		{memory{0xCA, 0x00, 0x20}, "JP Z, 0x2000", 3, 12, 16},
		{memory{0xCD, 0x00, 0x20}, "CALL 0x2000", 3, 24, 0},
		{memory{0xE0, 0x44}, "LDH (0xFF44), A", 2, 12, 0},
		{memory{0xE2}, "LD (C), A", 1, 8, 0},
		{memory{0xE8, 0xFF}, "ADD SP, -1", 2, 16, 0},
		{memory{0xE9}, "JP HL", 1, 4, 0},
		{memory{0xEA, 0x00, 0xC0}, "LD (0xC000), A", 3, 16, 0},
		{memory{0xF1}, "POP AF", 1, 12, 0},
		{memory{0xF8, 0x05}, "LD HL, SP+5", 2, 12, 0},
		{memory{0xFB}, "EI", 1, 4, 0},
		{memory{0xFE, 0x90}, "CP A, 0x90", 2, 8, 0},
		{memory{0xFF}, "RST 0x38", 1, 16, 0},
		{memory{0xCB, 0x11}, "RL C", 2, 8, 0},
		{memory{0xCB, 0x37}, "SWAP A", 2, 8, 0},
		{memory{0xCB, 0x7C}, "BIT 7, H", 2, 8, 0},
		{memory{0xCB, 0x46}, "BIT 0, (HL)", 2, 12, 0},
		{memory{0xCB, 0x86}, "RES 0, (HL)", 2, 16, 0},
		{memory{0xCB, 0xFF}, "SET 7, A", 2, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			instr, err := Decode(tt.bytes, 0)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if instr.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, instr.String())
			}
			if instr.Length != tt.length {
				t.Errorf("Expected length %d, got %d", tt.length, instr.Length)
			}
			if instr.Cycles != tt.cycles {
				t.Errorf("Expected %d cycles, got %d", tt.cycles, instr.Cycles)
			}
			if instr.BranchCycles != tt.branchCycles {
				t.Errorf("Expected %d branch cycles, got %d", tt.branchCycles, instr.BranchCycles)
			}
		})
	}
}

func TestDecode_IllegalOpcodes(t *testing.T) {
	for _, opcode := range illegalOpcodes {
		_, err := Decode(memory{0x00, opcode}, 1)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("Expected DecodeError for 0x%02X, got %v", opcode, err)
			continue
		}
		if decodeErr.Opcode != opcode || decodeErr.Address != 1 {
			t.Errorf("Expected 0x%02X at 0x0001, got 0x%02X at 0x%04X", opcode, decodeErr.Opcode, decodeErr.Address)
		}
	}
}

func TestDecode_AllOpcodes(t *testing.T) {
	illegal := make(map[uint8]bool)
	for _, opcode := range illegalOpcodes {
		illegal[opcode] = true
	}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		instr, err := Decode(memory{opcode, 0x00, 0x00}, 0)
		if illegal[opcode] {
			if err == nil {
				t.Errorf("Expected 0x%02X to be illegal", opcode)
			}
			continue
		}
		if err != nil {
			t.Errorf("Expected 0x%02X to decode, got %v", opcode, err)
			continue
		}
		if instr.Length < 1 || instr.Length > 3 {
			t.Errorf("Expected 0x%02X to have a length of 1-3, got %d", opcode, instr.Length)
		}
		if instr.Cycles == 0 {
			t.Errorf("Expected 0x%02X to take cycles", opcode)
		}
		if instr.Cycles%4 != 0 {
			t.Errorf("Expected cycles of 0x%02X to be a multiple of 4, got %d", opcode, instr.Cycles)
		}
	}

	for i := 0; i < 256; i++ {
		instr, err := Decode(memory{0xCB, uint8(i)}, 0)
		if err != nil {
			t.Errorf("Expected 0xCB 0x%02X to decode, got %v", i, err)
			continue
		}
		if !instr.Prefixed || instr.Length != 2 {
			t.Errorf("Expected 0xCB 0x%02X to be a 2 byte prefixed instruction", i)
		}
	}
}

func TestDecode_DoesNotAdvance(t *testing.T) {
	c, b := newTestCPU(0x3E, 0x05)
	if _, err := Decode(b, c.PC); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.PC != 0 || c.A != 0 {
		t.Errorf("Expected decoding to leave the CPU untouched, got PC=%#04x A=%#02x", c.PC, c.A)
	}
}
