package cpu

import (
	"errors"
	"testing"
)

// testBus is a flat 64 KiB memory with a queue of pending
// interrupt vectors. Writes to the echo region fault.
type testBus struct {
	mem     [0x10000]uint8
	pending []uint16
	writes  int
}

func (b *testBus) Read(address uint16) uint8 {
	return b.mem[address]
}

func (b *testBus) Write(address uint16, value uint8) error {
	b.writes++
	if address >= 0xE000 && address < 0xFE00 {
		return errors.New("echo")
	}
	b.mem[address] = value
	return nil
}

func (b *testBus) InterruptPending() bool {
	return len(b.pending) > 0
}

func (b *testBus) AcknowledgeInterrupt() uint16 {
	v := b.pending[0]
	b.pending = b.pending[1:]
	return v
}

// newTestCPU returns a CPU with program loaded at 0x0000.
func newTestCPU(program ...uint8) (*CPU, *testBus) {
	b := &testBus{}
	copy(b.mem[:], program)
	return NewCPU(b, nil), b
}

// step runs n instructions, failing the test on error.
func step(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("Expected no error on step %d, got %v", i, err)
		}
	}
}

func TestCPU_NewZeroed(t *testing.T) {
	c, _ := newTestCPU()
	for _, r := range []Reg{RegA, RegF, RegB, RegC, RegD, RegE, RegH, RegL, RegSP, RegPC} {
		if c.Register(r) != 0 {
			t.Errorf("Expected %s to be 0, got %#04x", r, c.Register(r))
		}
	}
	if c.IME() {
		t.Errorf("Expected IME to be disabled")
	}
}

func TestCPU_RegisterPairs(t *testing.T) {
	c, _ := newTestCPU()
	for _, r := range []Reg{RegBC, RegDE, RegHL} {
		c.SetRegister(r, 0xBEEF)
		if c.Register(r) != 0xBEEF {
			t.Errorf("Expected %s to round trip, got %#04x", r, c.Register(r))
		}
	}
	if c.B != 0xBE || c.C != 0xEF {
		t.Errorf("Expected B/C to be 0xBE/0xEF, got %#02x/%#02x", c.B, c.C)
	}

	c.SetRegister(RegAF, 0x12FF)
	if c.A != 0x12 || c.F != 0xF0 {
		t.Errorf("Expected A/F to be 0x12/0xF0, got %#02x/%#02x", c.A, c.F)
	}
	c.SetRegister(RegF, 0x0F)
	if c.F != 0 {
		t.Errorf("Expected lower nibble of F to stay clear, got %#02x", c.F)
	}
}

func TestCPU_LoadLoadDecrement(t *testing.T) {
	c, _ := newTestCPU(0x3E, 0x05, 0x06, 0x03, 0x05)
	step(t, c, 3)

	if c.A != 5 {
		t.Errorf("Expected A to be 5, got %d", c.A)
	}
	if c.B != 2 {
		t.Errorf("Expected B to be 2, got %d", c.B)
	}
	if c.isFlagSet(FlagZero) {
		t.Errorf("Expected Zero flag to be clear")
	}
	if c.isFlagSet(FlagHalfCarry) {
		t.Errorf("Expected Half Carry flag to be clear")
	}
	if c.PC != 5 {
		t.Errorf("Expected PC to be 5, got %#04x", c.PC)
	}
}

func TestCPU_Jump(t *testing.T) {
	c, _ := newTestCPU(0xC3, 0x00, 0x01)
	instr, err := Decode(c.bus, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if instr.Length != 3 {
		t.Errorf("Expected length 3, got %d", instr.Length)
	}
	step(t, c, 1)
	if c.PC != 0x0100 {
		t.Errorf("Expected PC to be 0x0100, got %#04x", c.PC)
	}
}

func TestCPU_Interrupt(t *testing.T) {
	c, b := newTestCPU(0x00, 0x00)
	c.SP = 0xFFFE
	c.PC = 0x1234
	c.SetIME(true)
	b.pending = []uint16{0x0050}

	ticks, err := c.Step()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ticks != 20 {
		t.Errorf("Expected 20 cycles, got %d", ticks)
	}
	if c.PC != 0x0050 {
		t.Errorf("Expected PC to be 0x0050, got %#04x", c.PC)
	}
	if c.IME() {
		t.Errorf("Expected IME to be disabled by dispatch")
	}
	if b.mem[0xFFFD] != 0x12 || b.mem[0xFFFC] != 0x34 {
		t.Errorf("Expected return address on the stack, got %#02x%02x", b.mem[0xFFFD], b.mem[0xFFFC])
	}
	if c.SP != 0xFFFC {
		t.Errorf("Expected SP to be 0xFFFC, got %#04x", c.SP)
	}
}

func TestCPU_InterruptMasked(t *testing.T) {
	c, b := newTestCPU(0x00)
	b.pending = []uint16{0x0040}
	step(t, c, 1)
	if c.PC != 1 {
		t.Errorf("Expected interrupt to be ignored with IME disabled, got PC %#04x", c.PC)
	}
}

func TestCPU_EIDelay(t *testing.T) {
	// EI, NOP, NOP
	c, b := newTestCPU(0xFB, 0x00, 0x00)
	c.SP = 0xFFFE
	b.pending = []uint16{0x0040}

	step(t, c, 1) // EI
	if c.IME() {
		t.Fatalf("Expected IME to be enabled after the next instruction")
	}
	step(t, c, 1) // NOP
	if !c.IME() {
		t.Fatalf("Expected IME to be enabled")
	}
	if c.PC != 2 {
		t.Errorf("Expected the instruction after EI to run, got PC %#04x", c.PC)
	}
	step(t, c, 1) // dispatch
	if c.PC != 0x0040 {
		t.Errorf("Expected interrupt dispatch, got PC %#04x", c.PC)
	}
}

func TestCPU_EIThenDI(t *testing.T) {
	c, _ := newTestCPU(0xFB, 0xF3, 0x00)
	step(t, c, 3)
	if c.IME() {
		t.Errorf("Expected DI to cancel a pending EI")
	}
}

func TestCPU_Halt(t *testing.T) {
	c, b := newTestCPU(0x76, 0x3C)
	step(t, c, 1)
	if !c.Halted() {
		t.Fatalf("Expected CPU to be halted")
	}

	ticks, _ := c.Step()
	if ticks != 4 || c.PC != 1 {
		t.Errorf("Expected CPU to idle, got %d cycles at PC %#04x", ticks, c.PC)
	}

	// with IME disabled, a pending interrupt resumes execution
	// without dispatching it
	b.pending = []uint16{0x0040}
	step(t, c, 1)
	if c.Halted() {
		t.Errorf("Expected CPU to wake up")
	}
	if c.A != 1 || c.PC != 2 {
		t.Errorf("Expected INC A to run, got A=%d PC=%#04x", c.A, c.PC)
	}
}

func TestCPU_DecodeErrorIsFatal(t *testing.T) {
	c, _ := newTestCPU(0x00, 0xD3)
	step(t, c, 1)

	_, err := c.Step()
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected DecodeError, got %v", err)
	}
	if decodeErr.Opcode != 0xD3 || decodeErr.Address != 1 {
		t.Errorf("Expected opcode 0xD3 at 0x0001, got %#02x at %#04x", decodeErr.Opcode, decodeErr.Address)
	}
	if c.PC != 1 {
		t.Errorf("Expected PC to stay at the illegal opcode, got %#04x", c.PC)
	}
}

func TestCPU_ExecuteError(t *testing.T) {
	c, _ := newTestCPU()
	c.PC = 0x0200
	_, err := c.Execute(Instruction{Address: 0x0200, Op: OpInvalid, Length: 1})

	var execErr *ExecuteError
	if !errors.As(err, &execErr) {
		t.Fatalf("Expected ExecuteError, got %v", err)
	}
	if execErr.PC != 0x0200 || execErr.Op != OpInvalid {
		t.Errorf("Expected INVALID at 0x0200, got %s at %#04x", execErr.Op, execErr.PC)
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		t.Errorf("Expected ExecuteError to be distinct from DecodeError")
	}
}

func TestCPU_MemoryFaultIsNotFatal(t *testing.T) {
	// LD HL, 0xE000; LD (HL), A; INC A
	c, b := newTestCPU(0x21, 0x00, 0xE0, 0x77, 0x3C)
	c.A = 0x42
	step(t, c, 3)
	if b.writes != 1 {
		t.Errorf("Expected one write attempt, got %d", b.writes)
	}
	if c.A != 0x43 {
		t.Errorf("Expected execution to continue after a fault, got A=%#02x", c.A)
	}
}
